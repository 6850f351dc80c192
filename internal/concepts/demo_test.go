package concepts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoWriterDefaultsColorAndMood(t *testing.T) {
	drafts, err := NewDemoWriter().WriteConcepts(context.Background(), Request{Story: "강가에서 산책하던 날"})
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	assert.Equal(t, "따뜻한 로맨틱한 이야기", drafts[0].Title)
	assert.Equal(t, "우리의 따뜻한 순간", drafts[1].Title)
	assert.Equal(t, "로맨틱한 꿈의 시작", drafts[2].Title)
	assert.Contains(t, drafts[0].Description, "자연을 모티브로")
	assert.Equal(t, "여행 티켓 모양의 청첩장으로 커플의 여행 취향을 반영", drafts[2].FormatSuggestion)
}

func TestDemoWriterUsesBlossomMotif(t *testing.T) {
	drafts, err := NewDemoWriter().WriteConcepts(context.Background(), Request{
		Story: "벚꽃잎이 흩날리던 봄날 처음 만났습니다",
		Color: "파스텔",
		Mood:  "설레는",
	})
	require.NoError(t, err)
	assert.Equal(t, "설레는 파스텔 이야기", drafts[0].Title)
	assert.Contains(t, drafts[0].Description, "벚꽃을 모티브로")
	assert.Equal(t, "Wedding invitation design with 파스텔 colors, 설레는 mood, romantic style, elegant typography, floral elements", drafts[0].ImagePrompt)
}

func TestDemoWriterTruncatesStoryByRunes(t *testing.T) {
	story := ""
	for range 60 {
		story += "가"
	}
	drafts, err := NewDemoWriter().WriteConcepts(context.Background(), Request{Story: story})
	require.NoError(t, err)
	assert.Contains(t, drafts[0].Description, "'"+story[:50*3]+"...'")
}

func TestStoryKeywords(t *testing.T) {
	assert.Equal(t, []string{"벚꽃", "여행", "고양이", "강"}, StoryKeywords("벚꽃 여행에서 고양이와 강가를 걸었다"))
	assert.Empty(t, StoryKeywords("평범한 하루"))
}

func TestDemoRendererSeeds(t *testing.T) {
	r := NewDemoRenderer()
	cases := map[string]string{
		"cherry blossom arch":         "https://picsum.photos/seed/cherry/600/800",
		"Minimalist wedding":          "https://picsum.photos/seed/minimal/600/800",
		"Creative wedding invitation": "https://picsum.photos/seed/creative/600/800",
		"로맨틱 정원":                      "https://picsum.photos/seed/romantic/600/800",
	}
	for prompt, want := range cases {
		got, err := r.Render(context.Background(), prompt, AspectInvitation)
		require.NoError(t, err)
		assert.Equal(t, want, got, prompt)
	}

	square, err := r.Render(context.Background(), "벚꽃 다이컷", AspectFormat)
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/seed/cherry/400/400", square)
}

func TestDemoRendererFallbackIsDeterministic(t *testing.T) {
	r := NewDemoRenderer()
	first, err := r.Render(context.Background(), "quiet harbour at dusk", AspectInvitation)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), "quiet harbour at dusk", AspectInvitation)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, fallbackSeeds, demoSeed("quiet harbour at dusk"))
}

func TestDemoProvidersFeedService(t *testing.T) {
	svc, _ := newTestService(t, NewDemoWriter(), NewDemoRenderer(), Options{Provider: "demo"})
	concepts, err := svc.Generate(context.Background(), Request{Story: "여행을 좋아하는 우리"})
	require.NoError(t, err)
	require.Len(t, concepts, 3)
	assert.Equal(t, "https://picsum.photos/seed/romantic/600/800", concepts[0].ImageURL)
	assert.Equal(t, "https://picsum.photos/seed/minimal/600/800", concepts[1].ImageURL)
	assert.Equal(t, "https://picsum.photos/seed/creative/600/800", concepts[2].ImageURL)
	assert.Len(t, concepts[2].FormatImageURLs, 3)
}
