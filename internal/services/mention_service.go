// Package services holds the request orchestration: validate the inbound
// mention, classify the command, fetch the attachment when one exists, and
// dispatch to the resolved backend agent. Each step must complete before the
// next begins, and every failure is terminal for the request.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mentiongate/internal/media"
	"mentiongate/internal/models"
	"mentiongate/pkg/classifier"
)

// MediaFetcher retrieves raw attachment bytes for one URL.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// AgentDispatcher forwards a classified request to its backend agent.
type AgentDispatcher interface {
	Dispatch(ctx context.Context, req *models.DispatchRequest) (models.DispatchResult, error)
}

// ProcessMentionParams is the inbound request after body parsing.
type ProcessMentionParams struct {
	UserCommand   string
	OriginalTweet string
	Metadata      map[string]any
}

// ProcessMentionResult is the success response payload. Category is the
// classifier's raw label, echoed verbatim even when routing fell back to the
// generic agent.
type ProcessMentionResult struct {
	Category string
	Result   models.DispatchResult
}

type MentionService struct {
	Classifier classifier.CommandClassifier
	Fetcher    MediaFetcher
	Dispatcher AgentDispatcher
}

func NewMentionService(c classifier.CommandClassifier, f MediaFetcher, d AgentDispatcher) *MentionService {
	return &MentionService{
		Classifier: c,
		Fetcher:    f,
		Dispatcher: d,
	}
}

// ProcessMention runs one mention through the whole pipeline. Validation
// failures short-circuit before any collaborator is invoked.
func (s *MentionService) ProcessMention(ctx context.Context, params ProcessMentionParams) (*ProcessMentionResult, error) {
	if params.UserCommand == "" || params.OriginalTweet == "" {
		return nil, fmt.Errorf("%w: userCommand and originalTweet are required", models.ErrValidation)
	}

	requestID := uuid.NewString()
	logger := log.WithField("request_id", requestID)

	label, err := s.Classifier.Classify(ctx, params.UserCommand, params.OriginalTweet)
	if err != nil {
		logger.Errorf("Classification failed: %v", err)
		return nil, err
	}

	category, recognized := models.ParseCategory(label)
	if !recognized {
		logger.Warnf("Classifier returned unknown label %q, routing to %s", label, models.CategoryGeneric)
	}
	logger = logger.WithField("category", category)
	logger.Infof("Command classified as %q", label)

	var attachment []byte
	if urls := media.ExtractMediaURLs(params.OriginalTweet); len(urls) > 0 {
		// One attachment per request: only the first candidate is fetched.
		attachment, err = s.Fetcher.Fetch(ctx, urls[0])
		if err != nil {
			logger.Errorf("Media fetch failed: %v", err)
			return nil, err
		}
		logger.Infof("Fetched attachment (%d bytes) from %s", len(attachment), urls[0])
	}

	metadata := make(map[string]any, len(params.Metadata)+1)
	for k, v := range params.Metadata {
		metadata[k] = v
	}
	metadata["request_id"] = requestID

	result, err := s.Dispatcher.Dispatch(ctx, &models.DispatchRequest{
		Category:      category,
		Command:       params.UserCommand,
		OriginalTweet: params.OriginalTweet,
		Attachment:    attachment,
		Metadata:      metadata,
	})
	if err != nil {
		logger.Errorf("Dispatch failed: %v", err)
		return nil, err
	}

	logger.Info("Mention processed successfully")

	return &ProcessMentionResult{
		Category: label,
		Result:   result,
	}, nil
}
