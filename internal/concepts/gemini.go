package concepts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTextModel     = "gemini-2.5-flash"
	defaultImageModel    = "imagen-4.0-generate-001"
	retryBase            = 500 * time.Millisecond
)

// GeminiConfig configures the hosted text and image models.
type GeminiConfig struct {
	BaseURL    string
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
	MaxRetries uint64
}

// GeminiClient implements ConceptWriter and ImageRenderer over the
// Generative Language REST API.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
	maxRetries uint64
	httpClient *http.Client
}

func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if cfg.TextModel == "" {
		cfg.TextModel = defaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = defaultImageModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &GeminiClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMimeType string `json:"outputMimeType"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}

var conceptSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":            map[string]any{"type": "STRING", "description": "디자인 컨셉의 감성적인 제목"},
			"description":      map[string]any{"type": "STRING", "description": "디자인이 고객의 사연과 사진(있을 경우)을 어떻게 반영하는지에 대한 상세 설명"},
			"formatSuggestion": map[string]any{"type": "STRING", "description": "청첩장의 창의적인 형태나 형식에 대한 제안 (예: 다이컷, 팝업, 티켓 모양 등)"},
			"imagePrompt":      map[string]any{"type": "STRING", "description": "AI 이미지 생성을 위한 상세하고 구체적인 프롬프트. 스타일, 색상, 주요 요소, 분위기를 포함하고, 제공된 사진의 요소를 자연스럽게 통합해야 함."},
		},
		"required": []string{"title", "description", "formatSuggestion", "imagePrompt"},
	},
}

// WriteConcepts asks the text model for structured concept drafts.
func (c *GeminiClient) WriteConcepts(ctx context.Context, req Request) ([]Draft, error) {
	parts := []geminiPart{{Text: conceptPrompt(req)}}
	if req.ImageData != "" {
		mime, data, err := splitDataURI(req.ImageData)
		if err != nil {
			return nil, err
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{MimeType: mime, Data: data}})
	}

	body := generateContentRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   conceptSchema,
		},
	}

	var resp generateContentResponse
	if err := c.post(ctx, c.textModel+":generateContent", body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	var drafts []Draft
	if err := json.Unmarshal([]byte(text), &drafts); err != nil {
		return nil, fmt.Errorf("failed to decode concepts: %w", err)
	}
	return drafts, nil
}

// Render generates one JPEG and returns it as a data URI.
func (c *GeminiClient) Render(ctx context.Context, prompt string, aspect Aspect) (string, error) {
	body := predictRequest{
		Instances: []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{
			SampleCount:    1,
			AspectRatio:    string(aspect),
			OutputMimeType: "image/jpeg",
		},
	}

	var resp predictResponse
	if err := c.post(ctx, c.imageModel+":predict", body, &resp); err != nil {
		return "", err
	}
	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("no image generated")
	}
	return "data:image/jpeg;base64," + resp.Predictions[0].BytesBase64Encoded, nil
}

func (c *GeminiClient) post(ctx context.Context, method string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	endpoint := c.baseURL + "/models/" + method

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.RetryableError(fmt.Errorf("failed to execute request: %w", err))
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("gemini %s: status %d, body: %s", method, resp.StatusCode, string(body))
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				return retry.RetryableError(statusErr)
			}
			return statusErr
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	})
}

func conceptPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("당신은 상상력이 풍부한 고급 청첩장 디자이너입니다. 다음 커플의 이야기, 선호도, 그리고 제공된 사진(있을 경우)을 바탕으로, 그들의 청첩장을 위한 독창적이고 예술적인 디자인 컨셉 3가지를 생성해주세요. 각 컨셉은 단순한 사각형을 넘어선 창의적인 형태나 형식을 제안해야 합니다.\n\n")
	b.WriteString("각 컨셉에 대해 다음 정보를 JSON 형식으로 제공해주세요:\n")
	b.WriteString("1. title: 짧고 감성적인 제목\n")
	b.WriteString("2. description: 디자인이 그들의 이야기와 사진(있을 경우)을 어떻게 반영하는지 설명하는 한 문단 길이의 글\n")
	b.WriteString("3. formatSuggestion: 청첩장의 창의적인 형태나 형식에 대한 제안 (예: 벚꽃 모양으로 따낸 다이컷 카드, 여행 티켓 모양의 청첩장, 펼치면 입체적인 팝업이 나타나는 형식 등)\n")
	b.WriteString("4. imagePrompt: AI 이미지 생성기가 청첩장 디자인을 만들 수 있도록 매우 상세하고 시각적인 프롬프트. 프롬프트는 스타일, 색상 팔레트, 핵심 요소, 전반적인 분위기를 포함해야 하며, 제공된 사진의 요소를 자연스럽게 통합해야 합니다.\n\n")
	b.WriteString("고객 정보:\n")
	fmt.Fprintf(&b, "- 우리의 이야기: %q\n", req.Story)
	fmt.Fprintf(&b, "- 원하는 색상 계열: %q\n", req.Color)
	fmt.Fprintf(&b, "- 선호하는 분위기: %q\n", req.Mood)
	fmt.Fprintf(&b, "- 특별히 넣고 싶은 요소: %q\n", req.Elements)
	if req.ImageData != "" {
		b.WriteString("- (고객이 제공한 사진이 다음에 첨부됩니다. 이 사진을 디자인 영감의 핵심 요소로 활용해주세요.)\n")
	}
	return b.String()
}
