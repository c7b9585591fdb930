package classifier

import (
	"context"
	"math"
	"sort"

	"topiclens/internal/cache"
	"topiclens/internal/config"
	"topiclens/internal/models"
	"topiclens/internal/validation"
)

// Service wraps a classification client with label resolution, confidence
// filtering, and result caching.
type Service struct {
	client        Client
	cache         *cache.Cache // nil when Redis is not configured
	labels        *config.LabelsConfig
	minConfidence float64
}

// NewService creates a classification service.
func NewService(client Client, resultCache *cache.Cache, labels *config.LabelsConfig, minConfidence float64) *Service {
	return &Service{
		client:        client,
		cache:         resultCache,
		labels:        labels,
		minConfidence: minConfidence,
	}
}

// DefaultLabels returns the label list used when a request carries none.
func (s *Service) DefaultLabels() []string {
	return s.labels.DefaultLabelList()
}

// Extract classifies the text against the given labels (or the default set
// when none are valid) and returns topics at or above the confidence
// threshold, rounded to three decimals and sorted by confidence descending.
func (s *Service) Extract(ctx context.Context, text string, labels []string) ([]models.Topic, error) {
	threshold := s.minConfidence

	resolved := validation.SanitizeLabels(labels)
	if resolved == nil {
		resolved = s.DefaultLabels()
		if set := s.labels.GetSet(s.labels.DefaultSetName()); set != nil && set.MinConfidence > 0 {
			threshold = set.MinConfidence
		}
	}

	key := cache.Key(text, resolved)
	if topics := s.cache.Get(key); topics != nil {
		return topics, nil
	}

	raw, err := s.client.Classify(ctx, text, resolved)
	if err != nil {
		return nil, err
	}

	topics := make([]models.Topic, 0, len(raw))
	for _, t := range raw {
		if t.ConfidenceScore < threshold {
			continue
		}
		t.ConfidenceScore = math.Round(t.ConfidenceScore*1000) / 1000
		topics = append(topics, t)
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].ConfidenceScore > topics[j].ConfidenceScore
	})

	s.cache.Set(key, topics)
	return topics, nil
}

// Ping reports whether the upstream classification endpoint is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
