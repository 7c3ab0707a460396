package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"homecatalog/pkg/domain"

	"github.com/google/uuid"
)

type PgItem struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	BGGID   int64           `db:"bgg_id"`
	Status  string          `db:"status"`
	Details json.RawMessage `db:"details" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgItem) ToDomain() (*domain.Item, error) {
	var details domain.ItemDetails
	if len(p.Details) > 0 {
		if err := json.Unmarshal(p.Details, &details); err != nil {
			return nil, fmt.Errorf("could not unmarshal item details: %w", err)
		}
	}

	return &domain.Item{
		ID:        domain.ItemID(p.ID),
		UserID:    domain.UserID(p.UserID),
		BGGID:     p.BGGID,
		Status:    domain.ItemStatus(p.Status),
		Details:   details,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgItem) FromDomain(item domain.Item) error {
	details, err := json.Marshal(item.Details)
	if err != nil {
		return fmt.Errorf("could not marshal item details: %w", err)
	}

	*p = PgItem{
		ID:      uuid.UUID(item.ID),
		UserID:  uuid.UUID(item.UserID),
		BGGID:   item.BGGID,
		Status:  string(item.Status),
		Details: details,
		Attempts: item.Attempts,
		LastError: sql.NullString{
			String: item.LastError,
			Valid:  item.LastError != "",
		},
		CreatedAt: item.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  item.UpdatedAt,
			Valid: !item.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  item.DeletedAt,
			Valid: !item.DeletedAt.IsZero(),
		},
	}

	return nil
}

type PgTag struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	Kind  string    `db:"kind"`
	Name  string    `db:"name"`
	BGGID int64     `db:"bgg_id"`
}

func (p *PgTag) ToDomain() domain.Tag {
	return domain.Tag{
		ID:    domain.TagID(p.ID),
		Kind:  domain.TagKind(p.Kind),
		Name:  p.Name,
		BGGID: p.BGGID,
	}
}

func (p *PgTag) FromDomain(tag domain.Tag) {
	*p = PgTag{
		ID:    uuid.UUID(tag.ID),
		Kind:  string(tag.Kind),
		Name:  tag.Name,
		BGGID: tag.BGGID,
	}
}

func domainItemsToPg(items []domain.Item) ([]PgItem, error) {
	out := make([]PgItem, len(items))
	for i := range out {
		if err := out[i].FromDomain(items[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgItemsToDomain(items []PgItem) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		d, err := item.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgTagsToDomain(tags []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.ToDomain())
	}

	return out
}
