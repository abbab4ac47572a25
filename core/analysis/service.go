package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
)

// Fallback messages; always returned in place of a raw gateway error.
const (
	MsgNotConfigured = "The analysis service is not configured. Please contact your administrator."
	MsgFailed        = "An error occurred while generating the analysis. Please try again later."
)

// Service builds natural-language prompts from attendance data and delegates
// to a text-generation capability. It never returns an error: misconfiguration
// and remote failures become fixed fallback messages.
type Service struct {
	gen    core.TextGenerator
	logger core.Logger
}

func NewService(gen core.TextGenerator, logger core.Logger) *Service {
	return &Service{gen: gen, logger: logger}
}

// ClassAnalysis returns a prose summary of a class's attendance trends.
func (svc *Service) ClassAnalysis(ctx context.Context, students []student.Student) string {
	return svc.generate(ctx, buildClassPrompt(students))
}

// ParentSummary returns a friendly per-student summary aimed at the parents.
func (svc *Service) ParentSummary(ctx context.Context, st student.Student) string {
	return svc.generate(ctx, buildParentPrompt(st))
}

func (svc *Service) generate(ctx context.Context, prompt string) string {
	if !svc.gen.Enabled() {
		return MsgNotConfigured
	}
	text, err := svc.gen.Generate(ctx, prompt)
	if err != nil {
		svc.logger.Error("text generation failed", errors.Wrap(err, "generating analysis"))
		return MsgFailed
	}
	return text
}

func buildClassPrompt(students []student.Student) string {
	var b strings.Builder
	b.WriteString("Analyze the following attendance data for a class and provide a concise summary.\n")
	b.WriteString("- Identify the overall attendance rate.\n")
	b.WriteString("- List any students with more than 3 absences in the last 30 days.\n")
	b.WriteString("- Highlight any emerging patterns (e.g., frequent Monday absences).\n")
	b.WriteString("- Conclude with a brief, actionable insight for the teacher.\n")
	b.WriteString("\nData:\n")
	for _, st := range students {
		fmt.Fprintf(&b, "\nStudent: %s\nAttendance: %s\n", st.Name, joinRecords(st.Attendance, ", "))
	}
	return b.String()
}

func buildParentPrompt(st student.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a friendly and concise attendance summary for the parents of %s.\n", st.Name)
	b.WriteString("- Calculate the overall attendance percentage for the last 30 days.\n")
	b.WriteString("- Mention any recent absences or late arrivals in a gentle tone.\n")
	b.WriteString("- End with a positive and encouraging note.\n")
	fmt.Fprintf(&b, "\nData for %s:\n%s\n", st.Name, joinRecords(st.Attendance, "\n"))
	return b.String()
}

func joinRecords(records []student.Record, sep string) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Date, rec.Status))
	}
	return strings.Join(lines, sep)
}
