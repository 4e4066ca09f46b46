package kittens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Kitten, error) {
	return s.repo.List(ctx)
}

// ListByBreed returns ErrNoKittensFound rather than an empty slice.
func (s *Service) ListByBreed(ctx context.Context, breedID int64) ([]Kitten, error) {
	if breedID <= 0 {
		return nil, ErrInvalidBreedID
	}

	items, err := s.repo.ListByBreed(ctx, breedID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoKittensFound
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Kitten, error) {
	if id <= 0 {
		return nil, ErrInvalidKittenID
	}
	return s.repo.GetByID(ctx, id)
}

// GetOwned resolves a kitten scoped to its owner. Someone else's kitten is
// reported as ErrKittenNotFound.
func (s *Service) GetOwned(ctx context.Context, ownerID, kittenID int64) (*Kitten, error) {
	if kittenID <= 0 {
		return nil, ErrInvalidKittenID
	}
	return s.repo.GetOwned(ctx, kittenID, ownerID)
}

// Create stores a new kitten owned by ownerID. Every field is required.
func (s *Service) Create(ctx context.Context, ownerID int64, fields Fields) (*Kitten, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("owner id is required")
	}

	errs := validateFields(fields, true)
	kitten := Kitten{OwnerID: ownerID}
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := s.checkBreed(ctx, tx, fields.BreedID, errs); err != nil {
			return err
		}
		if len(errs) > 0 {
			return errs
		}

		applyFields(&kitten, fields)
		if err := tx.Create(ctx, &kitten); err != nil {
			return fmt.Errorf("create kitten: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, unknownBreedAsFieldError(err)
	}
	return &kitten, nil
}

// Update applies the supplied fields to a kitten owned by ownerID.
func (s *Service) Update(ctx context.Context, ownerID, kittenID int64, fields Fields) (*Kitten, error) {
	if kittenID <= 0 {
		return nil, ErrInvalidKittenID
	}

	var result Kitten
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		kitten, err := tx.GetOwned(ctx, kittenID, ownerID)
		if err != nil {
			return err
		}

		errs := validateFields(fields, false)
		if err := s.checkBreed(ctx, tx, fields.BreedID, errs); err != nil {
			return err
		}
		if len(errs) > 0 {
			return errs
		}

		applyFields(kitten, fields)
		if err := tx.Update(ctx, kitten); err != nil {
			return fmt.Errorf("update kitten: %w", err)
		}

		result = *kitten
		return nil
	})
	if err != nil {
		return nil, unknownBreedAsFieldError(err)
	}

	return &result, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, kittenID int64) error {
	if kittenID <= 0 {
		return ErrInvalidKittenID
	}
	return s.repo.DeleteOwned(ctx, kittenID, ownerID)
}

func (s *Service) checkBreed(ctx context.Context, repo Repository, breedID *int64, errs FieldErrors) error {
	if breedID == nil || len(errs[FieldBreed]) > 0 {
		return nil
	}
	if *breedID <= 0 {
		errs.Add(FieldBreed, MsgUnknownBreed)
		return nil
	}

	exists, err := repo.BreedExists(ctx, *breedID)
	if err != nil {
		return fmt.Errorf("check breed: %w", err)
	}
	if !exists {
		errs.Add(FieldBreed, MsgUnknownBreed)
	}
	return nil
}

// unknownBreedAsFieldError reports a breed removed between checkBreed and
// the write the same way checkBreed would have.
func unknownBreedAsFieldError(err error) error {
	if errors.Is(err, ErrBreedNotFound) {
		return FieldErrors{FieldBreed: {MsgUnknownBreed}}
	}
	return err
}

func validateFields(fields Fields, requireAll bool) FieldErrors {
	errs := FieldErrors{}

	validateText(errs, FieldName, fields.Name, requireAll, maxNameLength)
	validateText(errs, FieldColor, fields.Color, requireAll, maxColorLength)
	validateText(errs, FieldDescription, fields.Description, requireAll, 0)

	switch {
	case fields.AgeInMonths == nil:
		if requireAll {
			errs.Add(FieldAgeInMonths, MsgRequired)
		}
	case *fields.AgeInMonths < 0:
		errs.Add(FieldAgeInMonths, MsgNegative)
	}

	if fields.BreedID == nil && requireAll {
		errs.Add(FieldBreed, MsgRequired)
	}

	return errs
}

func validateText(errs FieldErrors, field string, value *string, required bool, maxLength int) {
	if value == nil {
		if required {
			errs.Add(field, MsgRequired)
		}
		return
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		errs.Add(field, MsgBlank)
		return
	}
	if maxLength > 0 && utf8.RuneCountInString(trimmed) > maxLength {
		errs.Add(field, MsgTooLong)
	}
}

func applyFields(kitten *Kitten, fields Fields) {
	if fields.Name != nil {
		kitten.Name = strings.TrimSpace(*fields.Name)
	}
	if fields.Color != nil {
		kitten.Color = strings.TrimSpace(*fields.Color)
	}
	if fields.AgeInMonths != nil {
		kitten.AgeInMonths = *fields.AgeInMonths
	}
	if fields.Description != nil {
		kitten.Description = strings.TrimSpace(*fields.Description)
	}
	if fields.BreedID != nil {
		kitten.BreedID = *fields.BreedID
	}
}
