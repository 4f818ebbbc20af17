// File: database/repository/timeslot/transaction.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"barkbook/models"
)

// ClaimAndSplit books the anchor window and persists its leftover siblings as
// one transaction. The anchor keeps its original id so external references
// (sessions created moments later) stay valid; only its bounds, availability
// flag and booking reference are rewritten. The conditional update is guarded
// by isAvailable, so of two concurrent bookings exactly one can match; the
// loser sees MatchedCount == 0 and the whole transaction is aborted with
// ErrSlotTaken. A crash between the claim and the sibling inserts can never
// shrink total availability because both effects share the commit point.
func (r *mongoTimeslotRepo) ClaimAndSplit(ctx context.Context, anchor models.Timeslot, siblings []models.Timeslot) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id":          anchor.ID,
			"isAvailable": true,
		}
		update := bson.M{
			"$set": bson.M{
				"startTime":        anchor.StartTime,
				"endTime":          anchor.EndTime,
				"isAvailable":      false,
				"bookedByClientId": anchor.BookedByClientID,
			},
		}
		res, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("claim update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotTaken
		}

		if len(siblings) > 0 {
			docs := make([]interface{}, len(siblings))
			for i, s := range siblings {
				if s.ID == "" {
					s.ID = uuid.New().String()
				}
				docs[i] = s
			}
			if _, err := r.coll.InsertMany(sc, docs); err != nil {
				return fmt.Errorf("sibling insert failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
