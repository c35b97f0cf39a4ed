package project

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
	"github.com/mkassar/portfolio-backend/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	m.Run()
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]domain.Project

	listCalls int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]domain.Project)}
}

func (r *fakeProjectRepo) List(_ context.Context, f ListFilter) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	var out []domain.Project
	for _, p := range r.projects {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return domain.Project{}, domain.ErrNotFound("project")
	}
	return p, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, p domain.Project) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p domain.Project) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; !ok {
		return domain.Project{}, domain.ErrNotFound("project")
	}
	r.projects[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound("project")
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) AddImage(_ context.Context, img domain.ProjectImage) (domain.ProjectImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[img.ProjectID]
	if !ok {
		return domain.ProjectImage{}, domain.ErrNotFound("project")
	}
	p.Images = append(p.Images, img)
	r.projects[img.ProjectID] = p
	return img, nil
}

func (r *fakeProjectRepo) DeleteImage(_ context.Context, projectID, imageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return domain.ErrNotFound("project")
	}
	for i, img := range p.Images {
		if img.ID == imageID {
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			r.projects[projectID] = p
			return nil
		}
	}
	return domain.ErrNotFound("project_image")
}

func (r *fakeProjectRepo) ReorderImages(_ context.Context, projectID string, imageIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return domain.ErrNotFound("project")
	}
	byID := make(map[string]domain.ProjectImage, len(p.Images))
	for _, img := range p.Images {
		byID[img.ID] = img
	}
	reordered := make([]domain.ProjectImage, 0, len(imageIDs))
	for pos, id := range imageIDs {
		img := byID[id]
		img.Position = pos
		reordered = append(reordered, img)
	}
	p.Images = reordered
	r.projects[projectID] = p
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]domain.Category)}
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound("category")
	}
	return c, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, c domain.Category) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c domain.Category) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return domain.Category{}, domain.ErrNotFound("category")
	}
	r.categories[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound("category")
	}
	delete(r.categories, id)
	return nil
}

// fakeCache stores JSON like the real redis-backed cache does.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected error code %q, got %v", code, err)
	}
}

func setup(t *testing.T) (*Service, *fakeProjectRepo, *fakeCategoryRepo, *fakeCache) {
	t.Helper()
	projects := newFakeProjectRepo()
	categories := newFakeCategoryRepo()
	cache := newFakeCache()
	svc := NewService(projects, categories, cache, time.Minute)

	if _, err := categories.Create(context.Background(), domain.Category{ID: "cat1", Name: "Branding"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return svc, projects, categories, cache
}

func validInput() ProjectInput {
	return ProjectInput{
		Title:       "Rebrand",
		Description: "Full rebrand",
		CategoryID:  "cat1",
		Featured:    true,
	}
}

func TestCreateProject_RequiresExistingCategory(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := setup(t)

	in := validInput()
	in.CategoryID = "nope"
	_, err := svc.Create(context.Background(), in)
	requireDomainCode(t, err, "category_not_found")
}

func TestCreateProject_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := setup(t)

	for _, tc := range []struct {
		name   string
		mutate func(*ProjectInput)
	}{
		{"title", func(in *ProjectInput) { in.Title = " " }},
		{"description", func(in *ProjectInput) { in.Description = "" }},
		{"category", func(in *ProjectInput) { in.CategoryID = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			requireDomainCode(t, err, "missing_field")
		})
	}
}

func TestList_CachesUnfilteredListing(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := setup(t)
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	repo.listCalls = 0
	if _, err := svc.List(context.Background(), ListFilter{}); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if _, err := svc.List(context.Background(), ListFilter{}); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 store read, got %d", repo.listCalls)
	}
}

func TestList_FilteredListingBypassesCache(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := setup(t)

	for i := 0; i < 2; i++ {
		if _, err := svc.List(context.Background(), ListFilter{CategoryID: "cat1"}); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if repo.listCalls != 2 {
		t.Fatalf("filtered listing should always hit the store, got %d calls", repo.listCalls)
	}
}

func TestList_CacheFailureDegradesToStore(t *testing.T) {
	t.Parallel()

	svc, _, _, cache := setup(t)
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	cache.getErr = errors.New("redis down")

	out, err := svc.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list with broken cache: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 project, got %d", len(out))
	}
}

func TestMutationsInvalidateCachedListings(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := setup(t)
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.List(context.Background(), ListFilter{}); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	in := validInput()
	in.Title = "Renamed"
	if _, err := svc.Update(context.Background(), p.ID, in); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, err := svc.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Renamed" {
		t.Fatalf("stale listing after mutation: %+v", out)
	}
}

func TestGalleryImages_AddReorderDelete(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := setup(t)
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	img1, err := svc.AddImage(context.Background(), p.ID, "https://cdn/1.png", 0)
	if err != nil {
		t.Fatalf("add image: %v", err)
	}
	img2, err := svc.AddImage(context.Background(), p.ID, "https://cdn/2.png", 1)
	if err != nil {
		t.Fatalf("add image: %v", err)
	}

	if err := svc.ReorderImages(context.Background(), p.ID, []string{img2.ID, img1.ID}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	reloaded, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Images[0].ID != img2.ID || reloaded.Images[0].Position != 0 {
		t.Fatalf("reorder not applied: %+v", reloaded.Images)
	}

	if err := svc.DeleteImage(context.Background(), p.ID, img1.ID); err != nil {
		t.Fatalf("delete image: %v", err)
	}
	err = svc.DeleteImage(context.Background(), p.ID, img1.ID)
	requireDomainCode(t, err, "project_image_not_found")
}

func TestReorderImages_RejectsPartialOrUnknownIDs(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := setup(t)
	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	img1, _ := svc.AddImage(context.Background(), p.ID, "https://cdn/1.png", 0)
	if _, err := svc.AddImage(context.Background(), p.ID, "https://cdn/2.png", 1); err != nil {
		t.Fatalf("add image: %v", err)
	}

	err = svc.ReorderImages(context.Background(), p.ID, []string{img1.ID})
	requireDomainCode(t, err, "invalid_field")

	err = svc.ReorderImages(context.Background(), p.ID, []string{img1.ID, "ghost"})
	requireDomainCode(t, err, "invalid_field")
}

func TestCategories_CRUD(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := setup(t)

	c, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "Motion", NameAr: "موشن"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	updated, err := svc.UpdateCategory(context.Background(), c.ID, CategoryInput{Name: "Motion Design"})
	if err != nil {
		t.Fatalf("update category: %v", err)
	}
	if updated.Name != "Motion Design" {
		t.Fatalf("name %q", updated.Name)
	}

	if err := svc.DeleteCategory(context.Background(), c.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	_, err = svc.GetCategory(context.Background(), c.ID)
	requireDomainCode(t, err, "category_not_found")

	_, err = svc.CreateCategory(context.Background(), CategoryInput{Name: "  "})
	requireDomainCode(t, err, "missing_field")
}
