package cli

import (
	"bytes"
	"fmt"
	"os"

	service "github.com/okian/studypath/internal/app"
	"github.com/okian/studypath/internal/config"
	"github.com/okian/studypath/internal/domain/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// marksFile is the on-disk student record read by --file. JSON and YAML
// are both accepted.
type marksFile struct {
	Name      string   `yaml:"name"`
	Math      *float64 `yaml:"math"`
	Science   *float64 `yaml:"science"`
	English   *float64 `yaml:"english"`
	History   *float64 `yaml:"history"`
	Geography *float64 `yaml:"geography"`
	Computer  *float64 `yaml:"computer"`
}

func (f marksFile) marks() model.MarksRecord {
	marks := make(model.MarksRecord, len(model.Subjects()))
	for _, e := range []struct {
		subject model.Subject
		value   *float64
	}{
		{model.Math, f.Math},
		{model.Science, f.Science},
		{model.English, f.English},
		{model.History, f.History},
		{model.Geography, f.Geography},
		{model.Computer, f.Computer},
	} {
		if e.value != nil {
			marks[e.subject] = *e.value
		}
	}
	return marks
}

func readMarksFile(path string) (marksFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return marksFile{}, fmt.Errorf("failed to read marks file: %w", err)
	}
	var f marksFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return marksFile{}, fmt.Errorf("failed to parse marks file %s: %w", path, err)
	}
	return f, nil
}

type analyzeOptions struct {
	name   string
	file   string
	strict bool
	output string
	marks  map[model.Subject]*float64
}

func newAnalyzeCommand() *cobra.Command {
	opts := analyzeOptions{marks: make(map[model.Subject]*float64, len(model.Subjects()))}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse one student's marks",
		Example: "  studentctl analyze --name Ada --math 85 --science 78 --english 92 --history 45 --geography 55 --computer 88\n" +
			"  studentctl analyze --file marks.yaml --output yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "student name")
	cmd.Flags().StringVar(&opts.file, "file", "", "read the student from a JSON or YAML file; subject flags override it")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject records that omit a subject")
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputJSON, "output format (json, yaml)")
	for _, s := range model.Subjects() {
		opts.marks[s] = new(float64)
		cmd.Flags().Float64Var(opts.marks[s], string(s), 0, s.Display()+" marks (0-100)")
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions) error {
	if err := validOutput(opts.output); err != nil {
		return err
	}

	var record marksFile
	if opts.file != "" {
		f, err := readMarksFile(opts.file)
		if err != nil {
			return err
		}
		record = f
	}
	if cmd.Flags().Changed("name") {
		record.Name = opts.name
	}
	marks := record.marks()
	for _, s := range model.Subjects() {
		if cmd.Flags().Changed(string(s)) {
			marks[s] = *opts.marks[s]
		}
	}

	svc, err := newService(cmd, opts.strict)
	if err != nil {
		return err
	}
	report, err := svc.Analyze(cmd.Context(), record.Name, marks)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), opts.output, report)
}

// newService builds the pipeline from STUDYPATH_ configuration. strict
// tightens the configured subject policy.
func newService(cmd *cobra.Command, strict bool) (*service.Service, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	return service.New(
		service.WithStrictSubjects(cfg.StrictSubjects || strict),
		service.WithDailyHours(cfg.DailyStudyHours),
		service.WithTopStrongCount(cfg.TopStrongCount),
	), nil
}
