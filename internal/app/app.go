package app

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"mentiongate/internal/config"
	"mentiongate/internal/dispatch"
	"mentiongate/internal/media"
	"mentiongate/internal/services"
	"mentiongate/pkg/classifier"
)

// App wires the gateway's components together from configuration. Everything
// here is read-only after initialization; request handling shares no other
// state.
type App struct {
	Config *config.Config

	Classifier classifier.CommandClassifier
	Fetcher    *media.HTTPFetcher
	Dispatcher *dispatch.Dispatcher

	MentionService *services.MentionService
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{Config: cfg}

	if err := app.initClassifier(); err != nil {
		return nil, err
	}
	app.initFetcher()
	app.initDispatcher()
	app.initMentionService()

	return app, nil
}

func (a *App) initClassifier() error {
	promptTemplate, err := config.LoadPromptTemplate(a.Config.Classifier.PromptTemplate, classifier.DefaultPromptTemplate)
	if err != nil {
		return err
	}

	switch a.Config.Classifier.Provider {
	case "openai":
		client := openai.NewClient(a.Config.Classifier.OpenaiApiKey)
		a.Classifier = classifier.NewOpenAIClassifier(client, a.Config.Classifier.Model, a.Config.Classifier.Temperature, promptTemplate)
	case "gemini":
		gc, err := classifier.NewGeminiClassifier(context.Background(), a.Config.Classifier.GeminiApiKey, a.Config.Classifier.Model, a.Config.Classifier.Temperature, promptTemplate)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini classifier: %w", err)
		}
		a.Classifier = gc
	default:
		return fmt.Errorf("unknown classifier provider %q", a.Config.Classifier.Provider)
	}

	log.Infof("Classifier initialized (provider=%s, model=%s, temperature=%.2f)",
		a.Config.Classifier.Provider, a.Config.Classifier.Model, a.Config.Classifier.Temperature)
	return nil
}

func (a *App) initFetcher() {
	a.Fetcher = media.NewHTTPFetcher()
}

func (a *App) initDispatcher() {
	a.Dispatcher = dispatch.NewDispatcher(a.Config.Agents.BaseURL)
	log.Infof("Dispatcher initialized (base URL=%s)", a.Config.Agents.BaseURL)
}

func (a *App) initMentionService() {
	a.MentionService = services.NewMentionService(a.Classifier, a.Fetcher, a.Dispatcher)
}
