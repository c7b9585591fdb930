package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"topiclens/internal/db"
)

var (
	topicExtractionDesc = prometheus.NewDesc(
		"topiclens_topic_extractions_total",
		"Total topic extraction count by outcome",
		[]string{"topic", "outcome"},
		nil,
	)

	// ClassifierUp reports whether the upstream classification endpoint was
	// reachable on the last monitor probe.
	ClassifierUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "topiclens_classifier_up",
		Help: "Whether the classification endpoint is reachable (1) or not (0)",
	})
)

// TopicCollector is a custom Prometheus collector that reads topic extraction
// counts from the database on each scrape.
type TopicCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *TopicCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- topicExtractionDesc
}

// Collect queries the database for all topic stats and emits them as counters.
func (c *TopicCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.db.GetAllTopicStats(context.Background())
	if err != nil {
		slog.Error("failed to collect topic stat metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			topicExtractionDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Topic,
			s.Outcome,
		)
	}
}

// Recorder provides async topic stat recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&TopicCollector{db: database})
		prometheus.MustRegister(ClassifierUp)
	})
}

// RecordTopicExtraction asynchronously records an extraction outcome for a
// topic.
func RecordTopicExtraction(topic, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementTopicStat(context.Background(), topic, outcome); err != nil {
			slog.Error("failed to record topic extraction", "topic", topic, "outcome", outcome, "error", err)
		}
	}()
}
