package kittens

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeKittenRepo struct {
	kittens map[int64]*Kitten
	breeds  map[int64]bool
	nextID  int64

	inTx        bool
	createdInTx bool
	// writeErr is returned by Create and Update when set.
	writeErr error
}

func newFakeKittenRepo() *fakeKittenRepo {
	return &fakeKittenRepo{
		kittens: make(map[int64]*Kitten),
		breeds:  map[int64]bool{1: true, 2: true},
	}
}

func (r *fakeKittenRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	r.inTx = true
	defer func() { r.inTx = false }()
	return fn(r)
}

func (r *fakeKittenRepo) List(ctx context.Context) ([]Kitten, error) {
	items := make([]Kitten, 0, len(r.kittens))
	for _, kitten := range r.kittens {
		items = append(items, *kitten)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeKittenRepo) ListByBreed(ctx context.Context, breedID int64) ([]Kitten, error) {
	all, _ := r.List(ctx)
	items := make([]Kitten, 0)
	for _, kitten := range all {
		if kitten.BreedID == breedID {
			items = append(items, kitten)
		}
	}
	return items, nil
}

func (r *fakeKittenRepo) GetByID(ctx context.Context, id int64) (*Kitten, error) {
	kitten, ok := r.kittens[id]
	if !ok {
		return nil, ErrKittenNotFound
	}
	copied := *kitten
	return &copied, nil
}

func (r *fakeKittenRepo) GetOwned(ctx context.Context, id, ownerID int64) (*Kitten, error) {
	kitten, err := r.GetByID(ctx, id)
	if err != nil || kitten.OwnerID != ownerID {
		return nil, ErrKittenNotFound
	}
	return kitten, nil
}

func (r *fakeKittenRepo) BreedExists(ctx context.Context, breedID int64) (bool, error) {
	return r.breeds[breedID], nil
}

func (r *fakeKittenRepo) Create(ctx context.Context, kitten *Kitten) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.createdInTx = r.inTx
	r.nextID++
	kitten.ID = r.nextID
	stored := *kitten
	r.kittens[kitten.ID] = &stored
	return nil
}

func (r *fakeKittenRepo) Update(ctx context.Context, kitten *Kitten) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	stored := *kitten
	r.kittens[kitten.ID] = &stored
	return nil
}

func (r *fakeKittenRepo) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	kitten, ok := r.kittens[id]
	if !ok || kitten.OwnerID != ownerID {
		return ErrKittenNotFound
	}
	delete(r.kittens, id)
	return nil
}

func ptr[T any](value T) *T {
	return &value
}

func validFields() Fields {
	return Fields{
		Name:        ptr("Kitty1"),
		Color:       ptr("white"),
		AgeInMonths: ptr(3),
		Description: ptr("fluffy"),
		BreedID:     ptr(int64(1)),
	}
}

func TestCreateBindsOwner(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 42, validFields())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.OwnerID != 42 {
		t.Fatalf("expected owner 42, got %d", created.OwnerID)
	}
	if created.ID == 0 || created.Name != "Kitty1" || created.BreedID != 1 {
		t.Fatalf("unexpected kitten %+v", created)
	}
	if !repo.createdInTx {
		t.Fatalf("expected the breed check and insert to share a transaction")
	}
}

func TestBreedRemovedBeforeWrite(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)
	existing, err := svc.Create(context.Background(), 1, validFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// BreedExists still says yes, the write hits the foreign key
	repo.writeErr = ErrBreedNotFound

	_, err = svc.Create(context.Background(), 1, validFields())
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs[FieldBreed]) != 1 || fieldErrs[FieldBreed][0] != MsgUnknownBreed {
		t.Fatalf("expected breed field error on create, got %v", err)
	}

	_, err = svc.Update(context.Background(), 1, existing.ID, Fields{BreedID: ptr(int64(2))})
	fieldErrs = nil
	if !errors.As(err, &fieldErrs) || len(fieldErrs[FieldBreed]) != 1 || fieldErrs[FieldBreed][0] != MsgUnknownBreed {
		t.Fatalf("expected breed field error on update, got %v", err)
	}
}

func TestCreateFieldErrors(t *testing.T) {
	svc := NewService(newFakeKittenRepo())

	fields := Fields{
		Name:        ptr("  "),
		AgeInMonths: ptr(-1),
		Description: ptr("ok"),
		BreedID:     ptr(int64(99)),
	}
	_, err := svc.Create(context.Background(), 1, fields)

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	expect := map[string]string{
		FieldName:        MsgBlank,
		FieldColor:       MsgRequired,
		FieldAgeInMonths: MsgNegative,
		FieldBreed:       MsgUnknownBreed,
	}
	for field, message := range expect {
		if len(fieldErrs[field]) != 1 || fieldErrs[field][0] != message {
			t.Fatalf("expected %s=%q, got %v", field, message, fieldErrs[field])
		}
	}
	if _, ok := fieldErrs[FieldDescription]; ok {
		t.Fatalf("description is valid, got %v", fieldErrs[FieldDescription])
	}
}

func TestCreateRejectsLongName(t *testing.T) {
	svc := NewService(newFakeKittenRepo())
	fields := validFields()
	long := make([]rune, maxNameLength+1)
	for i := range long {
		long[i] = 'к'
	}
	fields.Name = ptr(string(long))

	_, err := svc.Create(context.Background(), 1, fields)
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) || fieldErrs[FieldName][0] != MsgTooLong {
		t.Fatalf("expected too long error, got %v", err)
	}
}

func TestListByBreed(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)
	for _, breed := range []int64{1, 1, 2} {
		fields := validFields()
		fields.BreedID = ptr(breed)
		if _, err := svc.Create(context.Background(), 1, fields); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := svc.ListByBreed(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 kittens, got %d", len(items))
	}

	repo.breeds[3] = true
	if _, err := svc.ListByBreed(context.Background(), 3); !errors.Is(err, ErrNoKittensFound) {
		t.Fatalf("expected ErrNoKittensFound, got %v", err)
	}
	if _, err := svc.ListByBreed(context.Background(), 0); !errors.Is(err, ErrInvalidBreedID) {
		t.Fatalf("expected ErrInvalidBreedID, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(newFakeKittenRepo())
	if _, err := svc.Get(context.Background(), 7); !errors.Is(err, ErrKittenNotFound) {
		t.Fatalf("expected ErrKittenNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)
	created, _ := svc.Create(context.Background(), 5, validFields())

	updated, err := svc.Update(context.Background(), 5, created.ID, Fields{Color: ptr("black")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Color != "black" {
		t.Fatalf("expected color updated, got %q", updated.Color)
	}
	if updated.Name != "Kitty1" || updated.AgeInMonths != 3 || updated.OwnerID != 5 {
		t.Fatalf("expected other fields untouched, got %+v", updated)
	}
	if repo.kittens[created.ID].Color != "black" {
		t.Fatalf("expected stored kitten updated")
	}
}

func TestUpdateNonOwnerLooksMissing(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)
	created, _ := svc.Create(context.Background(), 5, validFields())

	_, errOther := svc.Update(context.Background(), 6, created.ID, Fields{Name: ptr("Mine")})
	_, errMissing := svc.Update(context.Background(), 6, 999, Fields{Name: ptr("Mine")})
	if !errors.Is(errOther, ErrKittenNotFound) || !errors.Is(errMissing, ErrKittenNotFound) {
		t.Fatalf("expected ErrKittenNotFound for both, got %v and %v", errOther, errMissing)
	}
	if repo.kittens[created.ID].Name != "Kitty1" {
		t.Fatalf("expected kitten untouched")
	}
}

func TestUpdateValidatesSuppliedFields(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)
	created, _ := svc.Create(context.Background(), 5, validFields())

	_, err := svc.Update(context.Background(), 5, created.ID, Fields{Name: ptr(""), BreedID: ptr(int64(50))})
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fieldErrs) != 2 {
		t.Fatalf("expected name and breed errors only, got %v", fieldErrs)
	}
}

func TestDeleteOwnership(t *testing.T) {
	repo := newFakeKittenRepo()
	svc := NewService(repo)
	created, _ := svc.Create(context.Background(), 5, validFields())

	if err := svc.Delete(context.Background(), 6, created.ID); !errors.Is(err, ErrKittenNotFound) {
		t.Fatalf("expected ErrKittenNotFound for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), 5, created.ID); err != nil {
		t.Fatalf("expected owner delete to succeed, got %v", err)
	}
	if _, ok := repo.kittens[created.ID]; ok {
		t.Fatalf("expected kitten removed")
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{}
	errs.Add(FieldName, MsgBlank)
	errs.Merge(FieldErrors{FieldBreed: {MsgRequired}})
	if got := errs.Error(); got != "invalid fields: breed, name" {
		t.Fatalf("unexpected message %q", got)
	}
}
