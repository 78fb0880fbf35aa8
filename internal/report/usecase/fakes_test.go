package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"report-srv/internal/activity"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/internal/template"
	"report-srv/pkg/email"
	"report-srv/pkg/minio"
)

// fakeRepo keeps reports in memory. Transaction writes become visible on Commit.
type fakeRepo struct {
	mu         sync.Mutex
	reports    map[string]model.Report
	items      map[string][]model.ReportItem
	recipients map[string][]model.ReportRecipient

	beginCalls int
	rollbacks  int
	createErr  error
	updateErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		reports:    map[string]model.Report{},
		items:      map[string][]model.ReportItem{},
		recipients: map[string][]model.ReportRecipient{},
	}
}

type fakeTx struct {
	repo      *fakeRepo
	report    *model.Report
	items     []model.ReportItem
	done      bool
	committed bool
}

func (r *fakeRepo) BeginTx(context.Context) (repository.Tx, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beginCalls++
	return &fakeTx{repo: r}, nil
}

type fakeTxKey struct{}

func (t *fakeTx) Bind(ctx context.Context) context.Context {
	return context.WithValue(ctx, fakeTxKey{}, t)
}

// inFakeTx reports whether ctx was bound to an open fake transaction.
func inFakeTx(ctx context.Context) bool {
	t, ok := ctx.Value(fakeTxKey{}).(*fakeTx)
	return ok && !t.done
}

func (t *fakeTx) CreateReport(_ context.Context, rpt model.Report) error {
	if t.repo.createErr != nil {
		return t.repo.createErr
	}
	t.report = &rpt
	return nil
}

func (t *fakeTx) CreateItems(_ context.Context, items []model.ReportItem) error {
	t.items = append(t.items, items...)
	return nil
}

func (t *fakeTx) MarkGenerated(_ context.Context, opts repository.MarkGeneratedOptions) error {
	if t.report == nil || t.report.ID != opts.ReportID || t.report.Status != model.ReportStatusGenerating {
		return repository.ErrStatusConflict
	}
	t.report.Status = model.ReportStatusGenerated
	t.report.TotalHours = opts.TotalHours
	t.report.TotalTasks = opts.TotalTasks
	t.report.CompletedTasks = opts.CompletedTasks
	t.report.Metadata = opts.Metadata
	at := opts.GeneratedAt
	t.report.GeneratedAt = &at
	return nil
}

func (t *fakeTx) Commit() error {
	if t.done {
		return errors.New("tx done")
	}
	t.done, t.committed = true, true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.report != nil {
		t.repo.reports[t.report.ID] = *t.report
		t.repo.items[t.report.ID] = t.items
	}
	return nil
}

func (t *fakeTx) Rollback() error {
	if !t.committed {
		t.repo.mu.Lock()
		t.repo.rollbacks++
		t.repo.mu.Unlock()
	}
	t.done = true
	return nil
}

func (r *fakeRepo) put(rpt model.Report, items []model.ReportItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[rpt.ID] = rpt
	r.items[rpt.ID] = items
}

func (r *fakeRepo) GetReport(_ context.Context, id string) (model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rpt, ok := r.reports[id]
	if !ok {
		return model.Report{}, repository.ErrReportNotFound
	}
	return rpt, nil
}

func (r *fakeRepo) ListReports(_ context.Context, opts repository.ListReportsOptions) ([]model.Report, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Report
	for _, rpt := range r.reports {
		if opts.UserID != "" && rpt.UserID != opts.UserID {
			continue
		}
		if opts.Status != "" && rpt.Status != opts.Status {
			continue
		}
		out = append(out, rpt)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ListItems(_ context.Context, reportID string) ([]model.ReportItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[reportID], nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, opts repository.UpdateStatusOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	rpt, ok := r.reports[opts.ReportID]
	if !ok || rpt.Status != opts.From {
		return repository.ErrStatusConflict
	}
	rpt.Status = opts.To
	rpt.ErrorMessage = opts.ErrorMessage
	if opts.SentAt != nil {
		rpt.SentAt = opts.SentAt
	}
	r.reports[opts.ReportID] = rpt
	return nil
}

func (r *fakeRepo) CreateRecipient(ctx context.Context, rcp model.ReportRecipient) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipients[rcp.ReportID] = append(r.recipients[rcp.ReportID], rcp)
	return nil
}

func (r *fakeRepo) UpdateRecipient(ctx context.Context, rcp model.ReportRecipient) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.recipients[rcp.ReportID]
	for i := range list {
		if list[i].ID == rcp.ID {
			list[i] = rcp
			return nil
		}
	}
	return repository.ErrRecipientNotFound
}

func (r *fakeRepo) ListRecipients(_ context.Context, reportID string) ([]model.ReportRecipient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recipients[reportID], nil
}

type fakeLock struct {
	mu   sync.Mutex
	held map[string]string
}

func newFakeLock() *fakeLock {
	return &fakeLock{held: map[string]string{}}
}

func (l *fakeLock) acquire(key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return "", false, nil
	}
	token := fmt.Sprintf("token-%d", len(l.held)+1)
	l.held[key] = token
	return token, true, nil
}

func (l *fakeLock) release(key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == token {
		delete(l.held, key)
	}
	return nil
}

func (l *fakeLock) AcquireSend(_ context.Context, id string, _ time.Duration) (string, bool, error) {
	return l.acquire("send:" + id)
}

func (l *fakeLock) ReleaseSend(_ context.Context, id, token string) error {
	return l.release("send:"+id, token)
}

func generateKey(o repository.GenerateLockOptions) string {
	return fmt.Sprintf("gen:%s:%s:%s:%s", o.UserID, o.Kind, o.StartDate.Format(time.DateOnly), o.EndDate.Format(time.DateOnly))
}

func (l *fakeLock) AcquireGenerate(_ context.Context, o repository.GenerateLockOptions, _ time.Duration) (string, bool, error) {
	return l.acquire(generateKey(o))
}

func (l *fakeLock) ReleaseGenerate(_ context.Context, o repository.GenerateLockOptions, token string) error {
	return l.release(generateKey(o), token)
}

// fakeActivity serves projects and tasks per user from maps.
type fakeActivity struct {
	users       []model.User
	projects    map[string][]model.ProjectRef
	tasks       map[string][]model.TaskSnapshot
	failForUser map[string]error
	lastInput   activity.ProjectsWithActivityInput
	// reads counts activity reads made outside an open transaction.
	readsOutsideTx int
}

func (f *fakeActivity) ProjectsWithActivity(ctx context.Context, in activity.ProjectsWithActivityInput) ([]model.ProjectRef, error) {
	if !inFakeTx(ctx) {
		f.readsOutsideTx++
	}
	f.lastInput = in
	if err := f.failForUser[in.UserID]; err != nil {
		return nil, err
	}
	return f.projects[in.UserID], nil
}

func (f *fakeActivity) TasksWorkedOnInWindow(ctx context.Context, in activity.TasksWorkedOnInput) ([]model.TaskSnapshot, error) {
	if !inFakeTx(ctx) {
		f.readsOutsideTx++
	}
	return f.tasks[in.ProjectID], nil
}

func (f *fakeActivity) EligibleUsers(context.Context) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeActivity) GetUser(_ context.Context, id string) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, activity.ErrUserNotFound
}

type fakeTemplates struct {
	templates map[model.ReportKind]model.ReportTemplate
}

func (f fakeTemplates) FindDefault(_ context.Context, kind model.ReportKind) (model.ReportTemplate, error) {
	t, ok := f.templates[kind]
	if !ok {
		return model.ReportTemplate{}, template.ErrTemplateNotFound
	}
	return t, nil
}

// fakeMailer fails for the addresses in failFor and records every attempt.
// onSend runs after an attempt is recorded.
type fakeMailer struct {
	mu      sync.Mutex
	failFor map[string]error
	sent    []email.Email
	onSend  func()
}

func (m *fakeMailer) Send(ctx context.Context, e email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, e)
	if m.onSend != nil {
		m.onSend()
	}
	if err := m.failFor[e.ToEmail]; err != nil {
		return err
	}
	return ctx.Err()
}

type fakeStorage struct {
	uploaded []minio.Object
	err      error
}

func (s *fakeStorage) Ping(context.Context) error                 { return nil }
func (s *fakeStorage) Close() error                               { return nil }
func (s *fakeStorage) EnsureBucket(context.Context, string) error { return nil }

func (s *fakeStorage) PutDocument(_ context.Context, obj minio.Object) (minio.StoredObject, error) {
	if s.err != nil {
		return minio.StoredObject{}, s.err
	}
	s.uploaded = append(s.uploaded, obj)
	return minio.StoredObject{Bucket: obj.Bucket, Key: obj.Key, Size: int64(len(obj.Content))}, nil
}

func (s *fakeStorage) SignDownload(_ context.Context, req minio.SignRequest) (minio.SignedURL, error) {
	return minio.SignedURL{
		URL:       "https://minio.local/" + req.Bucket + "/" + req.Key,
		ExpiresAt: time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC),
	}, nil
}

type fakePublisher struct {
	generated []string
	sent      []string
	failed    []string
}

func (p *fakePublisher) PublishGenerated(_ context.Context, rpt model.Report) error {
	p.generated = append(p.generated, rpt.ID)
	return nil
}

func (p *fakePublisher) PublishSent(_ context.Context, rpt model.Report, _ report.SendOutput) error {
	p.sent = append(p.sent, rpt.ID)
	return nil
}

func (p *fakePublisher) PublishFailed(_ context.Context, rpt model.Report, _ string) error {
	p.failed = append(p.failed, rpt.ID)
	return nil
}
