package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/studypath/internal/adapters/http/api"
	service "github.com/okian/studypath/internal/app"
	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/internal/domain/types"
	"github.com/okian/studypath/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockDependencies lets tests force pipeline failures.
type mockDependencies struct {
	err      error
	gotName  string
	gotMarks model.MarksRecord
}

func (m *mockDependencies) Analyze(_ context.Context, name string, marks model.MarksRecord) (types.Report, error) {
	m.gotName, m.gotMarks = name, marks
	if m.err != nil {
		return types.Report{}, m.err
	}
	return types.Report{AnalysisID: "mock", StudentName: name}, nil
}

func (m *mockDependencies) CareerMap() map[string][]string {
	return map[string][]string{"Math": {"Engineering"}}
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps api.Dependencies, stats api.StatsProvider, opts ...api.Option) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, stats, opts...).Register(mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
	return out
}

func TestServer_Register(t *testing.T) {
	Convey("Given an API server backed by the analysis service", t, func() {
		svc := service.New()
		mux := newMux(svc, svc)

		Convey("Then the health endpoint serves Prometheus metrics", func() {
			w := do(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the stats endpoint serves service counters", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode(w), ShouldContainKey, "analyses")
		})

		Convey("And unknown paths are not found", func() {
			w := do(mux, http.MethodGet, "/unknown", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("And wrong methods are rejected with 405", func() {
			w := do(mux, http.MethodGet, "/api/analyze", "")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(w.Header().Get("Allow"), ShouldEqual, http.MethodPost)
			So(decode(w)["code"], ShouldEqual, "method_not_allowed")

			w = do(mux, http.MethodPost, "/api/careers", "")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestAnalyzeHandler(t *testing.T) {
	Convey("Given an API server backed by the analysis service", t, func() {
		svc := service.New()
		mux := newMux(svc, svc)

		Convey("When posting the demo payload", func() {
			demo := do(mux, http.MethodGet, "/api/demo", "")
			So(demo.Code, ShouldEqual, http.StatusOK)
			w := do(mux, http.MethodPost, "/api/analyze", demo.Body.String())

			Convey("Then the full analysis is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")

				var resp struct {
					Success bool `json:"success"`
					types.Report
				}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Success, ShouldBeTrue)
				So(resp.AnalysisID, ShouldNotBeEmpty)
				So(resp.StudentName, ShouldEqual, "Demo Student")
				So(resp.GapAnalysis.Average, ShouldEqual, 73.83)
				So(resp.GapAnalysis.WeakAreas[0].Subject, ShouldEqual, "History")
				So(len(resp.SubjectAnalysis), ShouldEqual, 6)
				So(resp.StudyPlan.TimeAllocation[0].HoursPerDay, ShouldEqual, 1.2)
				So(len(resp.StudyPlan.WeeklySchedule["Monday"]), ShouldEqual, 4)
				So(resp.CareerSuggestions[1].MatchScore, ShouldEqual, 67.0)
			})
		})

		Convey("When posting without a name or some subjects", func() {
			w := do(mux, http.MethodPost, "/api/analyze", `{"math": 90, "computer": 95}`)

			Convey("Then defaults are applied", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decode(w)
				So(body["student_name"], ShouldEqual, "Student")
				So(body["success"], ShouldEqual, true)
			})
		})

		Convey("When a mark is out of range", func() {
			w := do(mux, http.MethodPost, "/api/analyze", `{"name": "Ada", "math": 101}`)

			Convey("Then the schema rejects it before the core runs", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decode(w)
				So(body["success"], ShouldEqual, false)
				So(body["code"], ShouldEqual, "bad_request")
				So(body["error"], ShouldContainSubstring, "/math")
				So(svc.GetStats()["analyses"], ShouldEqual, int64(0))
			})
		})

		Convey("When the body is malformed", func() {
			cases := []struct {
				name string
				body string
			}{
				{"not json", `{"math": `},
				{"a string mark", `{"math": "85"}`},
				{"an unknown field", `{"music": 50}`},
				{"a non-object body", `[1, 2, 3]`},
				{"a numeric name", `{"name": 7}`},
			}
			for _, tc := range cases {
				Convey("Such as "+tc.name, func() {
					w := do(mux, http.MethodPost, "/api/analyze", tc.body)
					So(w.Code, ShouldEqual, http.StatusBadRequest)
					So(decode(w)["code"], ShouldEqual, "bad_request")
				})
			}
		})

		Convey("When the body exceeds the size limit", func() {
			small := newMux(svc, svc, api.WithMaxBodyBytes(16))
			w := do(small, http.MethodPost, "/api/analyze", `{"name": "A very long student name"}`)

			Convey("Then it is rejected as too large", func() {
				So(w.Code, ShouldEqual, http.StatusRequestEntityTooLarge)
			})
		})
	})

	Convey("Given a strict service", t, func() {
		svc := service.New(service.WithStrictSubjects(true))
		mux := newMux(svc, svc)

		Convey("When a subject is missing", func() {
			w := do(mux, http.MethodPost, "/api/analyze", `{"name": "Ada", "math": 90}`)

			Convey("Then the core's invalid input surfaces as invalid_input", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decode(w)
				So(body["code"], ShouldEqual, "invalid_input")
				So(body["error"], ShouldContainSubstring, "missing marks for science")
			})
		})
	})

	Convey("Given dependencies that fail", t, func() {
		deps := &mockDependencies{err: fmt.Errorf("wrapped: %w", model.ErrComputation)}
		mux := newMux(deps, &mockStatsProvider{stats: map[string]interface{}{}})

		Convey("When analysing", func() {
			w := do(mux, http.MethodPost, "/api/analyze", `{"name": " Ada ", "math": 10.5}`)

			Convey("Then a generic internal error is returned", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				body := decode(w)
				So(body["code"], ShouldEqual, "internal_error")
				So(body["error"], ShouldNotContainSubstring, "wrapped")
			})

			Convey("And the request was decoded before the call", func() {
				So(deps.gotName, ShouldEqual, " Ada ")
				So(deps.gotMarks, ShouldResemble, model.MarksRecord{model.Math: 10.5})
			})
		})
	})
}

func TestDemoAndCareers(t *testing.T) {
	Convey("Given an API server", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps, &mockStatsProvider{})

		Convey("When fetching the demo payload", func() {
			body := decode(do(mux, http.MethodGet, "/api/demo", ""))

			Convey("Then it carries the name and six marks", func() {
				So(body["name"], ShouldEqual, "Demo Student")
				So(body["math"], ShouldEqual, 85.0)
				So(body["history"], ShouldEqual, 45.0)
				So(len(body), ShouldEqual, 7)
			})
		})

		Convey("When fetching the career table", func() {
			w := do(mux, http.MethodGet, "/api/careers", "")

			Convey("Then the provider's map is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var resp struct {
					Success bool                `json:"success"`
					Careers map[string][]string `json:"careers"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Success, ShouldBeTrue)
				So(resp.Careers["Math"], ShouldResemble, []string{"Engineering"})
			})
		})
	})
}

func TestErrorKinds(t *testing.T) {
	Convey("Given errors built with the op helpers", t, func() {
		cause := errors.New("unexpected EOF")

		Convey("Then WrapKind matches both kind and cause", func() {
			err := api.WrapKind("api.analyze", api.ErrBadRequest, cause)
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.analyze: bad request: unexpected EOF")
		})

		Convey("And NewKind carries only the kind", func() {
			err := api.NewKind("api.demo", api.ErrInternal)
			So(errors.Is(err, api.ErrInternal), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.demo: internal error")
		})

		Convey("And Wrap keeps the cause's kinds", func() {
			err := api.Wrap("api.analyze", fmt.Errorf("gap: %w", model.ErrInvalidInput))
			So(errors.Is(err, model.ErrInvalidInput), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.analyze: gap: invalid input")
			So(api.Wrap("op", nil), ShouldBeNil)
		})
	})
}
