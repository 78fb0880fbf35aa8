// Package documenttest provides report fixtures for renderer tests.
package documenttest

import (
	"time"

	"github.com/shopspring/decimal"

	"report-srv/internal/document"
	"report-srv/internal/model"
)

// Input returns a generated weekly report with two projects.
func Input() document.Input {
	generated := time.Date(2024, 3, 25, 8, 0, 0, 0, time.UTC)
	h15 := decimal.RequireFromString("1.5")
	h1 := decimal.NewFromInt(1)

	return document.Input{
		Report: model.Report{
			ID:             "8f1c6c2e-3c44-4b53-9a55-0d3f2f6a1a01",
			UserID:         "u1",
			Title:          "Weekly Report - Week 12, 2024",
			Kind:           model.ReportKindWeekly,
			Status:         model.ReportStatusGenerated,
			StartDate:      time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC),
			WeekNumber:     12,
			Year:           2024,
			TotalHours:     decimal.RequireFromString("2.5"),
			TotalTasks:     3,
			CompletedTasks: 2,
			GeneratedAt:    &generated,
			CreatedAt:      generated,
		},
		Items: []model.ReportItem{
			{
				ProjectID:          "p1",
				ProjectName:        "Website Redesign",
				ContactName:        "Jane Doe",
				FirmName:           "Acme Ltd",
				TotalHours:         decimal.RequireFromString("2.5"),
				TaskCount:          2,
				CompletedTaskCount: 1,
				Notes:              "50% of tasks completed (1/2), 2h 30m logged, 1 urgent task.",
				Tasks: []model.TaskSnapshot{
					{ID: "t1", Name: "Wireframes | v2", Status: "completed", Priority: "urgent", ActualHours: &h15},
					{ID: "t2", Name: "Copy review", Status: "in_progress", Priority: "medium", ActualHours: &h1},
				},
			},
			{
				ProjectID:          "p2",
				ProjectName:        "Café Menu",
				TotalHours:         decimal.Zero,
				TaskCount:          1,
				CompletedTaskCount: 1,
				Notes:              "100% of tasks completed (1/1).",
				Tasks: []model.TaskSnapshot{
					{ID: "t3", Name: "Print proofs", Status: "completed", Priority: "low"},
				},
			},
		},
		Summary: document.Summary{
			Period:         "Week 12, 2024 (2024-03-18 to 2024-03-24)",
			ProjectsCount:  2,
			TotalHours:     "2h 30m",
			CompletionRate: "66.7",
			PreparedFor:    "Ana Silva",
			PreparedBy:     "CRM Reports",
		},
		FileName: "weekly-report-2024-W12",
	}
}
