package repositories

import (
	"context"
	"fmt"

	"elocalpass/internal/models"

	"github.com/google/uuid"
)

// HierarchyRepository reads and writes the activation flag of any tree entity.
type HierarchyRepository interface {
	GetNode(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*models.Node, error)
	// SetActive writes next only while the stored flag still equals expected.
	SetActive(ctx context.Context, kind models.EntityKind, id uuid.UUID, expected, next bool) error
}

type hierarchyRepo struct {
	db Pool
}

func NewHierarchyRepository(db Pool) HierarchyRepository {
	return &hierarchyRepo{db: db}
}

type levelTable struct {
	table     string
	parentCol string
}

var levelTables = map[models.EntityKind]levelTable{
	models.KindDistributor: {table: "distributors"},
	models.KindLocation:    {table: "locations", parentCol: "distributor_id"},
	models.KindSeller:      {table: "sellers", parentCol: "location_id"},
}

func tableFor(kind models.EntityKind) (levelTable, error) {
	t, ok := levelTables[kind]
	if !ok {
		return levelTable{}, fmt.Errorf("unknown entity kind %q", kind)
	}
	return t, nil
}

func (r *hierarchyRepo) GetNode(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*models.Node, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	parent := "NULL::uuid"
	if t.parentCol != "" {
		parent = t.parentCol
	}
	query := fmt.Sprintf(`SELECT id, %s, name, is_active FROM %s WHERE id = $1`, parent, t.table)

	n := &models.Node{Ref: models.EntityRef{Kind: kind}}
	if err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&n.Ref.ID, &n.ParentID, &n.Name, &n.Active); err != nil {
		return nil, mapError(err)
	}
	return n, nil
}

func (r *hierarchyRepo) SetActive(ctx context.Context, kind models.EntityKind, id uuid.UUID, expected, next bool) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET is_active = $1, updated_at = NOW() WHERE id = $2 AND is_active = $3`, t.table)
	tag, err := conn(ctx, r.db).Exec(ctx, query, next, id, expected)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStaleWrite
	}
	return nil
}
