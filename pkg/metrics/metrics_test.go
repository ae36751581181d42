package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should use the studypath namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.RecordAnalysis(OutcomeSuccess)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
				So(families[0].GetName(), ShouldStartWith, "studypath_analysis_")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordAnalysis(OutcomeSuccess)

			Convey("Then names and constant labels follow the options", func() {
				expected := `
# HELP test_namespace_test_subsystem_analyses_total Total number of marks analyses by outcome
# TYPE test_namespace_test_subsystem_analyses_total counter
test_namespace_test_subsystem_analyses_total{env="test",outcome="success"} 1
`
				err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "test_namespace_test_subsystem_analyses_total")
				So(err, ShouldBeNil)
			})
		})

		Convey("When two managers use separate registries", func() {
			So(func() {
				NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
				NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
			}, ShouldNotPanic)
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording analysis outcomes", func() {
			manager.RecordAnalysis(OutcomeSuccess)
			manager.RecordAnalysis(OutcomeSuccess)
			manager.RecordAnalysis(OutcomeInvalidInput)

			Convey("Then each outcome is counted separately", func() {
				So(testutil.ToFloat64(manager.analyses.WithLabelValues(OutcomeSuccess)), ShouldEqual, 2.0)
				So(testutil.ToFloat64(manager.analyses.WithLabelValues(OutcomeInvalidInput)), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.analyses.WithLabelValues(OutcomeError)), ShouldEqual, 0.0)
			})
		})

		Convey("When recording classifications", func() {
			manager.RecordClassifications(2, 0, 4)
			manager.RecordClassifications(1, 1, 4)

			Convey("Then counts accumulate per category", func() {
				So(testutil.ToFloat64(manager.classifications.WithLabelValues("weak")), ShouldEqual, 3.0)
				So(testutil.ToFloat64(manager.classifications.WithLabelValues("moderate")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.classifications.WithLabelValues("strong")), ShouldEqual, 8.0)
			})
		})

		Convey("When recording careers", func() {
			manager.RecordCareerSuggested("Data Science")
			manager.RecordCareerDefaultFallback()
			manager.RecordOverallPerformance("Good")

			Convey("Then the business counters move", func() {
				So(testutil.ToFloat64(manager.careersSuggested.WithLabelValues("Data Science")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.careerDefaultFallbacks), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.overallPerformance.WithLabelValues("Good")), ShouldEqual, 1.0)
			})
		})

		Convey("When recording gauges and histograms", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					manager.RecordAnalysisLatency(0.4)
					manager.RecordPlannedHours(28)
					manager.RecordHTTPRequest("/api/analyze", "POST", "200")
					manager.RecordHTTPRequestDuration("/api/analyze", "POST", "200", 1.5)
					manager.RecordErrorByComponent("service", "computation")
					manager.RecordErrorByEndpoint("/api/analyze", "POST", "bad_request")
					manager.RecordErrorLatency("service", "computation", 2.0)
					manager.UpdateSystemMemoryUsage(1024 * 1024)
					manager.UpdateSystemGoroutineCount(12)
					manager.RecordSystemGCPauseTime(0.3)
				}, ShouldNotPanic)
				So(testutil.ToFloat64(manager.systemGoroutineCount), ShouldEqual, 12.0)
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("/api/analyze", "POST", "200")), ShouldEqual, 1.0)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

		Convey("When recording", func() {
			manager.RecordAnalysis(OutcomeSuccess)
			manager.UpdateSystemGoroutineCount(5)

			Convey("Then nothing is observed", func() {
				So(testutil.ToFloat64(manager.analyses.WithLabelValues(OutcomeSuccess)), ShouldEqual, 0.0)
				So(testutil.ToFloat64(manager.systemGoroutineCount), ShouldEqual, 0.0)
			})
		})
	})
}

func TestGlobalMetrics(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through package helpers", func() {
			before := testutil.ToFloat64(globalManager.careerDefaultFallbacks)
			RecordCareerDefaultFallback()

			Convey("Then the custom registry exposes it", func() {
				So(testutil.ToFloat64(globalManager.careerDefaultFallbacks), ShouldEqual, before+1)
				count, err := testutil.GatherAndCount(GetRegistry(), "studypath_analysis_career_default_fallbacks_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When calling every helper", func() {
			So(func() {
				RecordAnalysis(OutcomeSuccess)
				RecordAnalysisLatency(1)
				RecordClassifications(1, 1, 4)
				RecordOverallPerformance("Average")
				RecordCareerSuggested("Law")
				RecordPlannedHours(28)
				RecordHTTPRequest("/healthz", "GET", "200")
				RecordHTTPRequestDuration("/healthz", "GET", "200", 0.1)
				RecordErrorByComponent("api", "bad_request")
				RecordErrorByEndpoint("/api/analyze", "POST", "bad_request")
				RecordErrorLatency("api", "bad_request", 0.2)
				UpdateSystemMemoryUsage(2048)
				UpdateSystemGoroutineCount(3)
				RecordSystemGCPauseTime(0.05)
			}, ShouldNotPanic)
		})
	})
}
