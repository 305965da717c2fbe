package content_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/infra/notifier"
	"stock-admin/internal/usecase/articlename"
	"stock-admin/internal/usecase/content"
)

/*────────────────────  スタブ  ────────────────────*/

type stubRepo struct {
	mu      sync.Mutex
	created []*entity.ArticleName
	calls   int
	err     error
}

func (s *stubRepo) Get(context.Context, int64) (*entity.ArticleName, error) { return nil, nil }
func (s *stubRepo) List(context.Context) ([]*entity.ArticleName, error) { return nil, nil }
func (s *stubRepo) Update(context.Context, *entity.ArticleName) error { return nil }
func (s *stubRepo) Delete(context.Context, int64) error { return nil }

func (s *stubRepo) Create(_ context.Context, a *entity.ArticleName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	a.ID = int64(len(s.created) + 1)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	s.created = append(s.created, a)
	return nil
}

func (s *stubRepo) CreateBatch(ctx context.Context, items []*entity.ArticleName) error {
	for _, a := range items {
		if err := s.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

type stubSeeder struct {
	res     articlename.SeedResult
	err     error
	calls   int
	running bool
}

func (s *stubSeeder) Seed(context.Context, entity.Actor) (articlename.SeedResult, error) {
	s.calls++
	return s.res, s.err
}

func (s *stubSeeder) Running() bool { return s.running }

type captureNotifier struct {
	events []notifier.Event
}

func (c *captureNotifier) Notify(_ context.Context, e notifier.Event) error {
	c.events = append(c.events, e)
	return nil
}

var (
	superAdmin = entity.Actor{ID: "root@example.com", Name: "Marie", Role: entity.RoleSuperAdmin}
	admin      = entity.Actor{ID: "ops@example.com", Role: entity.RoleAdmin}
)

/*────────────────────  アクセス制御  ────────────────────*/

func TestService_Screen_Gate(t *testing.T) {
	svc := &content.Service{ArticleNames: &stubRepo{}, Seeder: &stubSeeder{}}

	for _, actor := range []entity.Actor{admin, {}, {Role: entity.RoleSuperAdmin}} {
		got, err := svc.Screen(actor)
		assert.ErrorIs(t, err, content.ErrUnauthorized)
		assert.Nil(t, got, "no form or seed control for %+v", actor)
	}
}

func TestService_Screen(t *testing.T) {
	svc := &content.Service{ArticleNames: &stubRepo{}, Seeder: &stubSeeder{running: true}}

	got, err := svc.Screen(superAdmin)
	require.NoError(t, err)

	assert.Equal(t, "Gestion du contenu", got.Title)
	assert.Equal(t, "/admin", got.BackRoute)
	assert.Equal(t, content.DefaultForm(), got.Form)
	assert.False(t, got.ModalOpen)
	assert.True(t, got.Seeding)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "/admin/article-names", got.Sections[0].Href)
	assert.Equal(t, "/admin/supervisors", got.Sections[1].Href)

	want := []entity.Unit{"pièces", "kg", "litres", "mètres", "boîtes", "paquets", "tubes", "bouteilles", "cartons", "sacs"}
	if diff := cmp.Diff(want, got.Units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Screen_CustomBackRoute(t *testing.T) {
	svc := &content.Service{ArticleNames: &stubRepo{}, BackRoute: "/dashboard"}

	got, err := svc.Screen(superAdmin)
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", got.BackRoute)
	assert.False(t, got.Seeding)
}

/*────────────────────  フォーム送信  ────────────────────*/

func TestDefaultForm(t *testing.T) {
	assert.Equal(t, content.Form{Name: "", DefaultUnit: "pièces", Description: ""}, content.DefaultForm())
}

func TestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name      string
		form      content.Form
		wantField string
		wantDesc  string
	}{
		{"empty name", content.Form{Name: "", DefaultUnit: "kg"}, "name", "Le nom de l'article est obligatoire"},
		{"whitespace name", content.Form{Name: " \t ", DefaultUnit: "kg"}, "name", "Le nom de l'article est obligatoire"},
		{"unknown unit", content.Form{Name: "Eponge", DefaultUnit: "barils"}, "default_unit", "L'unité sélectionnée n'est pas valide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := &content.Service{ArticleNames: repo}

			res, err := svc.Submit(context.Background(), superAdmin, tt.form)

			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, 0, repo.calls, "store must not be called")
			assert.Equal(t, tt.form, res.Form)
			assert.True(t, res.ModalOpen)
			assert.Equal(t, tt.wantDesc, res.Notification.Description)
			assert.Equal(t, content.VariantDestructive, res.Notification.Variant)
		})
	}
}

func TestService_Submit_Success(t *testing.T) {
	repo := &stubRepo{}
	n := &captureNotifier{}
	svc := &content.Service{ArticleNames: repo, Notifier: n}

	res, err := svc.Submit(context.Background(), superAdmin, content.Form{Name: "Eponge", DefaultUnit: "kg", Description: ""})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	want := &entity.ArticleName{
		Name:          "Eponge",
		DefaultUnit:   "kg",
		Description:   nil,
		IsActive:      true,
		CreatedBy:     "root@example.com",
		CreatedByName: "Marie",
	}
	if diff := cmp.Diff(want, repo.created[0], cmpopts.IgnoreFields(entity.ArticleName{}, "ID", "CreatedAt", "UpdatedAt")); diff != "" {
		t.Errorf("created mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, content.DefaultForm(), res.Form, "form must be reset")
	assert.False(t, res.ModalOpen)
	assert.Equal(t, content.CreatedNotification, res.Notification)
	require.NotNil(t, res.Article)
	assert.NotZero(t, res.Article.ID)

	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventArticleNameCreated, n.events[0].Kind)
}

func TestService_Submit_TrimsAndDefaultsUnit(t *testing.T) {
	repo := &stubRepo{}
	svc := &content.Service{ArticleNames: repo}

	_, err := svc.Submit(context.Background(), superAdmin, content.Form{Name: "  Sel  ", Description: "  fin  "})
	require.NoError(t, err)

	got := repo.created[0]
	assert.Equal(t, "Sel", got.Name)
	assert.Equal(t, entity.DefaultUnit, got.DefaultUnit)
	require.NotNil(t, got.Description)
	assert.Equal(t, "fin", *got.Description)
}

func TestService_Submit_DuplicateNamesAccepted(t *testing.T) {
	repo := &stubRepo{}
	svc := &content.Service{ArticleNames: repo}
	form := content.Form{Name: "Eponge", DefaultUnit: "kg"}

	_, err := svc.Submit(context.Background(), superAdmin, form)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), superAdmin, form)
	require.NoError(t, err)
	assert.Len(t, repo.created, 2)
}

func TestService_Submit_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &stubRepo{err: storeErr}
	n := &captureNotifier{}
	svc := &content.Service{ArticleNames: repo, Notifier: n}
	form := content.Form{Name: " Eponge ", DefaultUnit: "kg", Description: "verte"}

	res, err := svc.Submit(context.Background(), superAdmin, form)

	var perr *content.PersistError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, "create article name", perr.Op)

	assert.Equal(t, form, res.Form, "form must stay exactly as submitted")
	assert.True(t, res.ModalOpen)
	assert.Nil(t, res.Article)
	assert.Equal(t, content.CreateFailedNotification, res.Notification)
	assert.Empty(t, n.events)
}

func TestService_Submit_Unauthorized(t *testing.T) {
	repo := &stubRepo{}
	svc := &content.Service{ArticleNames: repo}

	res, err := svc.Submit(context.Background(), admin, content.Form{Name: "Eponge"})
	assert.ErrorIs(t, err, content.ErrUnauthorized)
	assert.Equal(t, content.UnauthorizedNotification, res.Notification)
	assert.Equal(t, 0, repo.calls)
}

/*────────────────────  サンプル投入  ────────────────────*/

func TestService_Seed(t *testing.T) {
	tests := []struct {
		name     string
		actor    entity.Actor
		seeder   *stubSeeder
		wantErr  error
		wantNote content.Notification
		wantCall bool
	}{
		{
			name:     "success",
			actor:    superAdmin,
			seeder:   &stubSeeder{res: articlename.SeedResult{Success: true, Message: "11 articles d'exemple créés avec succès", Created: 11}},
			wantNote: content.Notification{Title: "Succès", Description: "11 articles d'exemple créés avec succès", Variant: content.VariantDefault},
			wantCall: true,
		},
		{
			name:     "in progress",
			actor:    superAdmin,
			seeder:   &stubSeeder{err: articlename.ErrSeedInProgress},
			wantErr:  articlename.ErrSeedInProgress,
			wantNote: content.SeedInProgressNotification,
			wantCall: true,
		},
		{
			name:     "not super admin",
			actor:    admin,
			seeder:   &stubSeeder{},
			wantErr:  content.ErrUnauthorized,
			wantNote: content.UnauthorizedNotification,
		},
		{
			name:     "store failure with message",
			actor:    superAdmin,
			seeder:   &stubSeeder{res: articlename.SeedResult{Message: articlename.SeedFailureMessage}, err: errors.New("tx aborted")},
			wantNote: content.SeedFailedNotification,
			wantCall: true,
		},
		{
			name:     "failure result without error",
			actor:    superAdmin,
			seeder:   &stubSeeder{res: articlename.SeedResult{Success: false, Message: "Aucun article créé"}},
			wantNote: content.Notification{Title: "Erreur", Description: "Aucun article créé", Variant: content.VariantDestructive},
			wantCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &content.Service{ArticleNames: &stubRepo{}, Seeder: tt.seeder}

			out, err := svc.Seed(context.Background(), tt.actor)

			assert.Equal(t, tt.wantNote, out.Notification)
			assert.Equal(t, tt.wantCall, tt.seeder.calls == 1)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantNote.Variant == content.VariantDestructive:
				var perr *content.PersistError
				assert.ErrorAs(t, err, &perr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Seed_WithRealSeeder_SecondCallIsNoOp(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	repo := &blockingRepo{release: release, entered: entered}
	seeder := &articlename.Seeder{
		Repo: repo,
		Samples: func() ([]*entity.ArticleName, error) {
			return []*entity.ArticleName{{Name: "Eponge", DefaultUnit: "pièces"}}, nil
		},
	}
	svc := &content.Service{ArticleNames: repo, Seeder: seeder}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Seed(context.Background(), superAdmin)
		done <- err
	}()
	<-entered

	screen, err := svc.Screen(superAdmin)
	require.NoError(t, err)
	assert.True(t, screen.Seeding, "loading flag must be visible while seeding")

	out, err := svc.Seed(context.Background(), superAdmin)
	assert.ErrorIs(t, err, articlename.ErrSeedInProgress)
	assert.Equal(t, content.SeedInProgressNotification, out.Notification)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, repo.batches)
}

type blockingRepo struct {
	stubRepo
	release chan struct{}
	entered chan struct{}
	batches int
}

func (b *blockingRepo) CreateBatch(_ context.Context, _ []*entity.ArticleName) error {
	b.batches++
	close(b.entered)
	<-b.release
	return nil
}
