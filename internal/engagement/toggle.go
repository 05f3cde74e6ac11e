// Package engagement implements the idempotent-association toggle used for
// post likes and den follows. A single toggle call flips the (subject, actor)
// pair exactly once without requiring the caller to pre-check existence.
package engagement

import (
	"context"
	"errors"

	"github.com/tsainez/bobchat/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// State is the association state after a toggle.
type State string

const (
	// StateOn means the toggle created the association row.
	StateOn State = "on"
	// StateOff means the row already existed and was removed.
	StateOff State = "off"
)

// Relation binds the toggler to one association table. The conflict columns
// must match a unique index on the pair; that index, not application memory,
// is what arbitrates concurrent toggles.
type Relation struct {
	subjectLabel string
	actorLabel   string
	subjectProbe func() interface{}
	actorProbe   func() interface{}
	newRow       func(subjectID, actorID uint) interface{}
	rowModel     func() interface{}
	pairWhere    string
	conflictCols []clause.Column
}

// LikeRelation toggles Like rows keyed by (post, user).
func LikeRelation() Relation {
	return Relation{
		subjectLabel: "Post",
		actorLabel:   "User",
		subjectProbe: func() interface{} { return &models.Post{} },
		actorProbe:   func() interface{} { return &models.User{} },
		newRow: func(subjectID, actorID uint) interface{} {
			return &models.Like{PostID: subjectID, UserID: actorID}
		},
		rowModel:  func() interface{} { return &models.Like{} },
		pairWhere: "post_id = ? AND user_id = ?",
		conflictCols: []clause.Column{
			{Name: "post_id"},
			{Name: "user_id"},
		},
	}
}

// FollowRelation toggles Follow rows keyed by (den, user).
func FollowRelation() Relation {
	return Relation{
		subjectLabel: "Den",
		actorLabel:   "User",
		subjectProbe: func() interface{} { return &models.Den{} },
		actorProbe:   func() interface{} { return &models.User{} },
		newRow: func(subjectID, actorID uint) interface{} {
			return &models.Follow{DenID: subjectID, UserID: actorID}
		},
		rowModel:  func() interface{} { return &models.Follow{} },
		pairWhere: "den_id = ? AND user_id = ?",
		conflictCols: []clause.Column{
			{Name: "den_id"},
			{Name: "user_id"},
		},
	}
}

// Toggler flips association rows for one relation.
type Toggler struct {
	db  *gorm.DB
	rel Relation
}

// NewToggler creates a Toggler bound to the given relation.
func NewToggler(db *gorm.DB, rel Relation) *Toggler {
	return &Toggler{db: db, rel: rel}
}

// Toggle inserts the (subjectID, actorID) row, returning StateOn; if the
// unique pair already exists the insert is absorbed and the row is deleted
// instead, returning StateOff. Both outcomes run inside one transaction.
// A missing subject or actor yields NotFound; the engine never silently
// no-ops. Concurrent toggles from the same actor on the same subject are
// last-writer-wins, which matches a single human clicking a button.
func (t *Toggler) Toggle(ctx context.Context, subjectID, actorID uint) (State, error) {
	state := StateOff

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(t.rel.subjectProbe(), subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError(t.rel.subjectLabel, subjectID)
			}
			return err
		}
		if err := tx.Select("id").First(t.rel.actorProbe(), actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError(t.rel.actorLabel, actorID)
			}
			return err
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   t.rel.conflictCols,
			DoNothing: true,
		}).Create(t.rel.newRow(subjectID, actorID))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			state = StateOn
			return nil
		}

		// Pair already present: the click means "turn it off".
		return tx.Where(t.rel.pairWhere, subjectID, actorID).
			Delete(t.rel.rowModel()).Error
	})
	if err != nil {
		return "", err
	}
	return state, nil
}

// IsOn reports whether the (subjectID, actorID) association currently exists.
func (t *Toggler) IsOn(ctx context.Context, subjectID, actorID uint) (bool, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(t.rel.rowModel()).
		Where(t.rel.pairWhere, subjectID, actorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
