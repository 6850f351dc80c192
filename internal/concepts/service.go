package concepts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
	"github.com/angelmondragon/invitation-backend/pkg/metrics"
)

const (
	maxStoryRunes      = 2000
	defaultConcurrency = 3
	defaultItemTimeout = 45 * time.Second
)

var imageDataRe = regexp.MustCompile(`^data:image/[a-z0-9.+-]+;base64,[A-Za-z0-9+/=\s]+$`)

// Options tunes the generation fan-out.
type Options struct {
	Provider    string
	Count       int
	Concurrency int
	ItemTimeout time.Duration
}

// Service generates illustrated design concepts from a story.
type Service interface {
	Generate(ctx context.Context, req Request) ([]Concept, error)
}

type service struct {
	writer   ConceptWriter
	renderer ImageRenderer
	opts     Options
	metrics  *metrics.ConceptMetrics
	logg     *logger.Logger
}

// NewService wires a writer and renderer into a generator.
func NewService(writer ConceptWriter, renderer ImageRenderer, opts Options, m *metrics.ConceptMetrics, logg *logger.Logger) (Service, error) {
	if writer == nil {
		return nil, fmt.Errorf("concept writer required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("image renderer required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.ItemTimeout <= 0 {
		opts.ItemTimeout = defaultItemTimeout
	}
	return &service{writer: writer, renderer: renderer, opts: opts, metrics: m, logg: logg}, nil
}

func (s *service) Generate(ctx context.Context, req Request) ([]Concept, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() { s.metrics.ObserveDuration(s.opts.Provider, time.Since(started)) }()

	drafts, err := s.writer.WriteConcepts(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logg.Error(ctx, "concepts.write_failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "디자인 컨셉을 생성하는 데 실패했습니다.")
	}
	if s.opts.Count > 0 && len(drafts) > s.opts.Count {
		drafts = drafts[:s.opts.Count]
	}

	concepts := make([]Concept, len(drafts))
	failures := make([]error, len(drafts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, draft := range drafts {
		g.Go(func() error {
			itemCtx, cancel := context.WithTimeout(gctx, s.opts.ItemTimeout)
			defer cancel()
			concepts[i], failures[i] = s.illustrate(itemCtx, draft)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := multierr.Combine(failures...); err != nil {
		logCtx := s.logg.WithField(ctx, "failed_concepts", len(multierr.Errors(err)))
		s.logg.Warn(logCtx, "concepts.placeholder")
		s.logg.Debug(s.logg.WithField(logCtx, "errors", err.Error()), "concepts.placeholder_detail")
	}
	return concepts, nil
}

// illustrate renders one concept. Failures degrade to placeholders and are
// returned for logging only.
func (s *service) illustrate(ctx context.Context, d Draft) (Concept, error) {
	c := Concept{
		Title:            d.Title,
		Description:      d.Description,
		FormatSuggestion: d.FormatSuggestion,
		ImagePrompt:      d.ImagePrompt,
		FormatImageURLs:  []string{},
	}

	image, err := s.renderer.Render(ctx, d.ImagePrompt, AspectInvitation)
	if err != nil {
		s.metrics.IncPlaceholder("image")
		c.ImageURL = invitationPlaceholder
		c.FormatImageURLs = formatPlaceholders(d.Title)
		c.Placeholder = true
		return c, fmt.Errorf("concept %q image: %w", d.Title, err)
	}
	c.ImageURL = image

	if strings.TrimSpace(d.FormatSuggestion) == "" {
		s.metrics.IncGenerated(s.opts.Provider)
		return c, nil
	}

	formats, err := s.renderFormats(ctx, d.FormatSuggestion)
	if err != nil {
		s.metrics.IncPlaceholder("format")
		c.FormatImageURLs = formatPlaceholders(d.FormatSuggestion)
		c.Placeholder = true
		return c, fmt.Errorf("concept %q formats: %w", d.Title, err)
	}
	c.FormatImageURLs = formats
	s.metrics.IncGenerated(s.opts.Provider)
	return c, nil
}

// renderFormats renders all three views; any failure fails the set.
func (s *service) renderFormats(ctx context.Context, suggestion string) ([]string, error) {
	prompts := formatPrompts(suggestion)
	out := make([]string, len(prompts))
	g, gctx := errgroup.WithContext(ctx)
	for i, prompt := range prompts {
		g.Go(func() error {
			ref, err := s.renderer.Render(gctx, prompt, AspectFormat)
			if err != nil {
				return err
			}
			out[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeRequest(req Request) (Request, error) {
	req.Story = strings.TrimSpace(req.Story)
	req.Color = strings.TrimSpace(req.Color)
	req.Mood = strings.TrimSpace(req.Mood)
	req.Elements = strings.TrimSpace(req.Elements)
	req.ImageData = strings.TrimSpace(req.ImageData)

	if req.Story == "" {
		return req, pkgerrors.New(pkgerrors.CodeValidation, "우리의 이야기를 들려주세요.").WithDetails(map[string]any{"field": "story"})
	}
	if utf8.RuneCountInString(req.Story) > maxStoryRunes {
		return req, pkgerrors.New(pkgerrors.CodeValidation, "story is too long").WithDetails(map[string]any{"field": "story", "max": maxStoryRunes})
	}
	if req.ImageData != "" && !imageDataRe.MatchString(req.ImageData) {
		return req, pkgerrors.New(pkgerrors.CodeValidation, "image_data must be a base64 image data URI").WithDetails(map[string]any{"field": "image_data"})
	}
	return req, nil
}

// splitDataURI returns the mime type and base64 payload of an image data URI.
func splitDataURI(uri string) (string, string, error) {
	header, data, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return "", "", errors.New("malformed data uri")
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if mime == "" {
		mime = "image/jpeg"
	}
	return mime, data, nil
}
