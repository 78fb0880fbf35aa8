package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"report-srv/internal/document"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/util"
)

var hundred = decimal.NewFromInt(100)

func weeklyTitle(week, year int) string {
	return fmt.Sprintf("Weekly Report - Week %d, %d", week, year)
}

func monthlyTitle(year int, month time.Month) string {
	return fmt.Sprintf("Monthly Report - %s %d", month, year)
}

func rangeTitle(prefix string, start, end time.Time) string {
	return fmt.Sprintf("%s - %s to %s", prefix, util.DateToStr(start), util.DateToStr(end))
}

// periodLabel describes the report period in words, e.g. "Week 12, 2024".
func periodLabel(rpt model.Report) string {
	switch {
	case rpt.Kind == model.ReportKindWeekly && rpt.WeekNumber > 0:
		return fmt.Sprintf("Week %d, %d", rpt.WeekNumber, rpt.Year)
	case rpt.Kind == model.ReportKindMonthly && rpt.Month > 0:
		return fmt.Sprintf("%s %d", time.Month(rpt.Month), rpt.Year)
	default:
		return fmt.Sprintf("%s to %s", util.DateToStr(rpt.StartDate), util.DateToStr(rpt.EndDate))
	}
}

// attachmentName is the extension-less document name, e.g. "weekly-report-2024-W12".
func attachmentName(rpt model.Report, prefix string) string {
	if prefix == "" {
		prefix = string(rpt.Kind) + "-report"
	}
	switch {
	case rpt.Kind == model.ReportKindWeekly && rpt.WeekNumber > 0:
		return fmt.Sprintf("%s-%d-W%02d", prefix, rpt.Year, rpt.WeekNumber)
	case rpt.Kind == model.ReportKindMonthly && rpt.Month > 0:
		return fmt.Sprintf("%s-%d-%02d", prefix, rpt.Year, rpt.Month)
	default:
		return fmt.Sprintf("%s-%s_%s", prefix, util.DateToStr(rpt.StartDate), util.DateToStr(rpt.EndDate))
	}
}

// buildNotes composes the summary sentence of a project line. Each part is
// only present when its figure is non-zero.
func buildNotes(item model.ReportItem) string {
	parts := make([]string, 0, 4)

	if item.TaskCount > 0 {
		pct := decimal.NewFromInt(int64(item.CompletedTaskCount)).
			Div(decimal.NewFromInt(int64(item.TaskCount))).Mul(hundred).Round(0)
		parts = append(parts, fmt.Sprintf("%s%% of tasks completed (%d/%d)",
			pct.String(), item.CompletedTaskCount, item.TaskCount))
	}
	if item.TotalHours.IsPositive() {
		parts = append(parts, util.FormatHours(item.TotalHours)+" logged")
	}

	var urgent, high int
	for _, t := range item.Tasks {
		switch t.Priority {
		case model.TaskPriorityUrgent:
			urgent++
		case model.TaskPriorityHigh:
			high++
		}
	}
	if urgent > 0 {
		parts = append(parts, plural(urgent, "urgent task"))
	}
	if high > 0 {
		parts = append(parts, plural(high, "high-priority task"))
	}

	if len(parts) == 0 {
		return "No tasks worked on in this period."
	}
	return strings.Join(parts, ", ") + "."
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// completionRate is completed/total*100 rounded to one decimal, 0 when total is 0.
func completionRate(completed, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(completed)).
		Div(decimal.NewFromInt(int64(total))).Mul(hundred).Round(1)
}

// averageHours is hours/projects rounded to two decimals, 0 without projects.
func averageHours(hours decimal.Decimal, projects int) decimal.Decimal {
	if projects <= 0 {
		return decimal.Zero
	}
	return hours.Div(decimal.NewFromInt(int64(projects))).Round(2)
}

func buildMetadata(projects, completed, total int, hours decimal.Decimal) map[string]any {
	return map[string]any{
		report.MetaProjectsCount:          projects,
		report.MetaCompletionRate:         completionRate(completed, total).InexactFloat64(),
		report.MetaAverageHoursPerProject: averageHours(hours, projects).InexactFloat64(),
	}
}

func projectsCount(rpt model.Report, items []model.ReportItem) int {
	if v, ok := rpt.Metadata[report.MetaProjectsCount]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return len(items)
}

func buildSummary(rpt model.Report, items []model.ReportItem, preparedFor, preparedBy string) document.Summary {
	return document.Summary{
		Period:         periodLabel(rpt),
		ProjectsCount:  projectsCount(rpt, items),
		TotalHours:     util.FormatHours(rpt.TotalHours),
		CompletionRate: completionRate(rpt.CompletedTasks, rpt.TotalTasks).StringFixed(1),
		PreparedFor:    preparedFor,
		PreparedBy:     preparedBy,
	}
}

// templateVars are the placeholders available to email templates.
func (uc *implUseCase) templateVars(rpt model.Report, items []model.ReportItem, rcp model.ReportRecipient) map[string]string {
	name := rcp.Name
	if name == "" {
		name = rcp.Email
	}
	return map[string]string{
		"recipient_name":  name,
		"sender_name":     uc.config.SenderName,
		"report_title":    rpt.Title,
		"period":          periodLabel(rpt),
		"start_date":      util.DateToStr(rpt.StartDate),
		"end_date":        util.DateToStr(rpt.EndDate),
		"projects_count":  fmt.Sprintf("%d", projectsCount(rpt, items)),
		"total_tasks":     fmt.Sprintf("%d", rpt.TotalTasks),
		"completed_tasks": fmt.Sprintf("%d", rpt.CompletedTasks),
		"total_hours":     util.FormatHours(rpt.TotalHours),
		"completion_rate": completionRate(rpt.CompletedTasks, rpt.TotalTasks).StringFixed(1),
	}
}
