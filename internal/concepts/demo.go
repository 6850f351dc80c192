package concepts

import (
	"context"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
)

const (
	defaultDemoColor = "로맨틱한"
	defaultDemoMood  = "따뜻한"
	storyExcerpt     = 50
)

var fallbackSeeds = []string{"wedding", "invitation", "elegant", "beautiful", "love"}

// DemoWriter drafts concepts locally without calling a model.
type DemoWriter struct{}

func NewDemoWriter() DemoWriter { return DemoWriter{} }

func (DemoWriter) WriteConcepts(ctx context.Context, req Request) ([]Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = defaultDemoColor
	}
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		mood = defaultDemoMood
	}
	motif := "자연"
	if slices.Contains(StoryKeywords(req.Story), "벚꽃") {
		motif = "벚꽃"
	}

	return []Draft{
		{
			Title:            fmt.Sprintf("%s %s 이야기", mood, color),
			Description:      fmt.Sprintf("'%s...'의 이야기를 담은 %s 색조의 %s 분위기 청첩장입니다. %s을 모티브로 한 우아한 디자인으로, 커플의 특별한 순간을 아름답게 표현합니다.", excerpt(req.Story, storyExcerpt), color, mood, motif),
			ImagePrompt:      fmt.Sprintf("Wedding invitation design with %s colors, %s mood, romantic style, elegant typography, floral elements", color, mood),
			FormatSuggestion: "벚꽃 모양으로 따낸 다이컷 카드 형태의 청첩장",
		},
		{
			Title:            fmt.Sprintf("우리의 %s 순간", mood),
			Description:      fmt.Sprintf("커플의 소중한 추억을 담은 %s 톤의 디자인입니다. 미니멀하면서도 감성적인 레이아웃으로, 결혼식의 특별함을 강조합니다.", color),
			ImagePrompt:      fmt.Sprintf("Minimalist wedding invitation, %s color palette, clean design, modern typography, elegant layout", color),
			FormatSuggestion: "펼치면 입체적인 팝업이 나타나는 형식의 청첩장",
		},
		{
			Title:            fmt.Sprintf("%s 꿈의 시작", color),
			Description:      fmt.Sprintf("커플만의 독특한 이야기를 반영한 %s 분위기의 청첩장입니다. 창의적인 레이아웃과 세심한 디테일로 특별한 순간을 더욱 빛나게 합니다.", mood),
			ImagePrompt:      fmt.Sprintf("Creative wedding invitation design, %s tones, %s atmosphere, artistic layout, unique format", color, mood),
			FormatSuggestion: "여행 티켓 모양의 청첩장으로 커플의 여행 취향을 반영",
		},
	}, nil
}

// StoryKeywords lists the motifs recognised in a story. 강가 and 벚꽃잎 match
// through their shorter stems.
func StoryKeywords(story string) []string {
	var out []string
	if strings.Contains(story, "벚꽃") {
		out = append(out, "벚꽃")
	}
	if strings.Contains(story, "여행") {
		out = append(out, "여행")
	}
	if strings.Contains(story, "고양이") {
		out = append(out, "고양이")
	}
	if strings.Contains(story, "강") {
		out = append(out, "강")
	}
	return out
}

// DemoRenderer maps prompts onto stock photo URLs.
type DemoRenderer struct{}

func NewDemoRenderer() DemoRenderer { return DemoRenderer{} }

func (DemoRenderer) Render(ctx context.Context, prompt string, aspect Aspect) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	width, height := 600, 800
	if aspect == AspectFormat {
		width, height = 400, 400
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", demoSeed(prompt), width, height), nil
}

func demoSeed(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(prompt, "벚꽃") || strings.Contains(lower, "cherry"):
		return "cherry"
	case strings.Contains(lower, "minimalist") || strings.Contains(prompt, "미니멀"):
		return "minimal"
	case strings.Contains(lower, "creative") || strings.Contains(prompt, "창의"):
		return "creative"
	case strings.Contains(lower, "romantic") || strings.Contains(prompt, "로맨틱"):
		return "romantic"
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	return fallbackSeeds[h.Sum32()%uint32(len(fallbackSeeds))]
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
