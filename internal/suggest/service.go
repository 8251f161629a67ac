// Package suggest asks a local model for theme colors and turns the reply
// into validated theme suggestions.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/logger"
	"github.com/alexisbeaulieu97/pricetable/internal/ollama"
	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

// Collaborator names the model backend in errors and logs.
const Collaborator = "ollama"

// ErrUnavailable is returned when the Ollama server does not answer.
var ErrUnavailable = errors.New("ollama server is not reachable")

const (
	palettePrompt  = `Generate a cohesive and accessible color palette for a web application UI. Provide hex color codes for primary actions, header text, table header background, price text, main package text, and secondary details text. Ensure good contrast and a professional, modern feel.`
	gradientPrompt = `Generate a pleasant and harmonious color gradient for a table row background. Provide three very light, soft, and complementary hex color codes (e.g., #RRGGBB).`
)

var paletteSchema = &ollama.Schema{
	Type: "object",
	Properties: map[string]ollama.Property{
		"primary":     {Type: "string", Description: "The primary color for buttons and accents."},
		"headerText":  {Type: "string", Description: "The text color for the main header."},
		"tableHeader": {Type: "string", Description: "The background color for the table header."},
		"priceText":   {Type: "string", Description: "The color for price text to make it stand out."},
		"packageText": {Type: "string", Description: "The main text color for package names."},
		"detailsText": {Type: "string", Description: "The secondary text color for package details."},
	},
	Required: []string{"primary", "headerText", "tableHeader", "priceText", "packageText", "detailsText"},
}

var gradientSchema = &ollama.Schema{
	Type: "object",
	Properties: map[string]ollama.Property{
		"from": {Type: "string", Description: "The starting hex color code for the gradient."},
		"via":  {Type: "string", Description: "The middle hex color code for the gradient."},
		"to":   {Type: "string", Description: "The ending hex color code for the gradient."},
	},
	Required: []string{"from", "via", "to"},
}

// Config configures the suggestion service.
type Config struct {
	Host        string        // Ollama host (default: http://localhost:11434)
	Model       string        // Model to use (default: ministral-3:3b)
	Temperature float64       // Sampling temperature; zero leaves the model default
	Timeout     time.Duration // Whole-request timeout (default: 60s)
}

// Service produces palette and gradient suggestions.
type Service struct {
	client      *ollama.Client
	model       string
	temperature float64
	log         *logger.Logger
}

// NewService creates a suggestion service backed by Ollama.
func NewService(cfg Config, log *logger.Logger) *Service {
	opts := []ollama.Option{}
	if cfg.Host != "" {
		opts = append(opts, ollama.WithHost(cfg.Host))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, ollama.WithTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = ollama.DefaultModel
	}

	return &Service{
		client:      ollama.NewClient(opts...),
		model:       model,
		temperature: cfg.Temperature,
		log:         log,
	}
}

// SuggestPalette asks for the six UI roles.
func (s *Service) SuggestPalette(ctx context.Context) (theme.UIPalette, error) {
	var palette theme.UIPalette
	if err := s.request(ctx, "palette", palettePrompt, paletteSchema, &palette); err != nil {
		return theme.UIPalette{}, err
	}
	return palette, nil
}

// SuggestGradient asks for the three row background stops.
func (s *Service) SuggestGradient(ctx context.Context) (theme.Gradient, error) {
	var gradient theme.Gradient
	if err := s.request(ctx, "gradient", gradientPrompt, gradientSchema, &gradient); err != nil {
		return theme.Gradient{}, err
	}
	return gradient, nil
}

func (s *Service) request(ctx context.Context, op, prompt string, schema *ollama.Schema, out theme.Suggestion) error {
	log := s.log.WithFields(map[string]any{"op": op, "model": s.model, "host": s.client.Host()})
	log.Debug("requesting color suggestion")

	if !s.client.IsAvailable(ctx) {
		err := fmt.Errorf("%w at %s", ErrUnavailable, s.client.Host())
		log.Error(err, "ollama unavailable")
		return pterrors.NewCollaboratorError(Collaborator, op, err)
	}

	var opts *ollama.Options
	if s.temperature > 0 {
		opts = &ollama.Options{Temperature: s.temperature}
	}

	raw, err := s.client.ChatJSON(ctx, s.model, []ollama.Message{
		{Role: "user", Content: prompt},
	}, schema, opts)
	if err != nil {
		log.Error(err, "color suggestion request failed")
		return pterrors.NewCollaboratorError(Collaborator, op, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		err = fmt.Errorf("parse %s: %w", op, err)
		log.Error(err, "color suggestion was not valid JSON")
		return pterrors.NewCollaboratorError(Collaborator, op, err)
	}

	if err := theme.Validate(out); err != nil {
		log.Error(err, "color suggestion is incomplete")
		return pterrors.NewCollaboratorError(Collaborator, op, err)
	}

	log.Info("color suggestion received")
	return nil
}

