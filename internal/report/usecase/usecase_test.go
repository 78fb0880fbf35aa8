package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"report-srv/internal/document"
	"report-srv/internal/document/markdown"
	"report-srv/internal/document/pdf"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/clock"
	"report-srv/pkg/log"
)

var testNow = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	uc        report.UseCase
	repo      *fakeRepo
	lock      *fakeLock
	activity  *fakeActivity
	mailer    *fakeMailer
	storage   *fakeStorage
	publisher *fakePublisher
	clock     *clock.Fixed
}

func hours(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestEnv(cfg Config) *testEnv {
	env := &testEnv{
		repo: newFakeRepo(),
		lock: newFakeLock(),
		activity: &fakeActivity{
			users: []model.User{{ID: "u1", Name: "Ana Silva", Email: "ana@example.com"}},
			projects: map[string][]model.ProjectRef{
				"u1": {
					{ID: "p1", Name: "Website Redesign", ContactName: "Jane Doe", FirmName: "Acme Ltd"},
					{ID: "p2", Name: "Menu Print"},
				},
			},
			tasks: map[string][]model.TaskSnapshot{
				"p1": {
					{ID: "t1", Name: "Wireframes", Status: model.TaskStatusCompleted, Priority: model.TaskPriorityUrgent, ActualHours: hours("1.5")},
					{ID: "t2", Name: "Copy review", Status: "in_progress", Priority: model.TaskPriorityHigh, ActualHours: hours("1")},
				},
				"p2": {
					{ID: "t3", Name: "Proofs", Status: model.TaskStatusCompleted, Priority: "low"},
				},
			},
			failForUser: map[string]error{},
		},
		mailer:    &fakeMailer{failFor: map[string]error{}},
		storage:   &fakeStorage{},
		publisher: &fakePublisher{},
		clock:     clock.NewFixed(testNow),
	}

	templates := fakeTemplates{templates: map[model.ReportKind]model.ReportTemplate{
		model.ReportKindWeekly: {
			Name:             "weekly-default",
			Kind:             model.ReportKindWeekly,
			Subject:          "{report_title}",
			Body:             "Hi {recipient_name}, {completed_tasks}/{total_tasks} tasks, {total_hours} ({completion_rate}%) from {sender_name}.",
			Format:           model.DocumentFormatPDF,
			AttachmentPrefix: "weekly-report",
			IsDefault:        true,
			IsActive:         true,
		},
		model.ReportKindCustom: {
			Name:      "custom-default",
			Kind:      model.ReportKindCustom,
			Subject:   "{report_title}",
			Body:      "{period}",
			Format:    model.DocumentFormatMarkdown,
			IsDefault: true,
			IsActive:  true,
		},
	}}

	env.uc = New(
		log.NewNop(),
		env.repo,
		env.lock,
		env.activity,
		templates,
		[]document.Renderer{pdf.New("CRM Reports"), markdown.New()},
		env.mailer,
		env.storage,
		env.publisher,
		env.clock,
		cfg,
	)
	return env
}
