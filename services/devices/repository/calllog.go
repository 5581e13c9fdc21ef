package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertCallLog appends one call event to the ledger
func (r *CallLogRepo) InsertCallLog(ctx context.Context, record *models.CallLog) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err := r.callLogs.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert call log: %w", err)
	}
	return nil
}

// ListByDevice returns a device's ledger rows newest first by call date
func (r *CallLogRepo) ListByDevice(ctx context.Context, deviceID primitive.ObjectID) ([]models.CallLog, error) {
	cursor, err := r.callLogs.Find(ctx,
		bson.M{"deviceId": deviceID},
		options.Find().SetSort(bson.D{{Key: "callDate", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.CallLog
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode call logs: %w", err)
	}
	return result, nil
}

// CountByDevice counts ledger rows for a device, optionally bounded by call
// date. Nil bounds mean all time.
func (r *CallLogRepo) CountByDevice(ctx context.Context, deviceID primitive.ObjectID, from, to *time.Time) (int64, error) {
	filter := bson.M{"deviceId": deviceID}
	if from != nil || to != nil {
		window := bson.M{}
		if from != nil {
			window["$gte"] = *from
		}
		if to != nil {
			window["$lte"] = *to
		}
		filter["callDate"] = window
	}

	count, err := r.callLogs.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count call logs: %w", err)
	}
	return count, nil
}

// Aggregate computes the call counters for one user over a window with a
// single $group pass. An outgoing call with the literal "0 seconds" duration
// counts as unanswered.
func (r *CallLogRepo) Aggregate(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (*models.CallAnalytics, error) {
	countWhen := func(cond bson.M) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{cond, 1, 0}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"userId":   userID,
			"callDate": bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total_calls":    bson.M{"$sum": 1},
			"incoming_calls": countWhen(bson.M{"$eq": bson.A{"$type", models.CallIncoming}}),
			"missed_calls":   countWhen(bson.M{"$eq": bson.A{"$type", models.CallMissed}}),
			"outgoing_calls": countWhen(bson.M{"$eq": bson.A{"$type", models.CallOutgoing}}),
			"unanswered_outgoing": countWhen(bson.M{"$and": bson.A{
				bson.M{"$eq": bson.A{"$type", models.CallOutgoing}},
				bson.M{"$eq": bson.A{"$duration", models.UnansweredDuration}},
			}}),
			"answered_outgoing": countWhen(bson.M{"$and": bson.A{
				bson.M{"$eq": bson.A{"$type", models.CallOutgoing}},
				bson.M{"$ne": bson.A{"$duration", models.UnansweredDuration}},
			}}),
		}}},
	}

	cursor, err := r.callLogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate call logs: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.CallAnalytics
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode analytics: %w", err)
	}

	// No rows in the window is a valid all-zero answer
	if len(results) == 0 {
		return &models.CallAnalytics{}, nil
	}
	return &results[0], nil
}

// Search pages through a user's ledger joined to the device registry, with a
// case-insensitive match across number, type and device name.
func (r *CallLogRepo) Search(ctx context.Context, userID primitive.ObjectID, page, limit int64, search string) (*models.CallLogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	match := bson.M{"userId": userID}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         devicesCollection,
			"localField":   "deviceId",
			"foreignField": "_id",
			"as":           "device",
		}}},
		{{Key: "$unwind", Value: "$device"}},
		{{Key: "$addFields", Value: bson.M{"deviceName": "$device.deviceName"}}},
	}

	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"number": regex},
				bson.M{"type": regex},
				bson.M{"deviceName": regex},
			},
		}}})
	}

	countPipeline := append(mongo.Pipeline{}, pipeline...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := r.callLogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to search call logs: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.CallLogEntry
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode call log rows: %w", err)
	}

	countCursor, err := r.callLogs.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count call logs: %w", err)
	}
	defer countCursor.Close(ctx)

	var counts []struct {
		Total int64 `bson:"total"`
	}
	if err := countCursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode call log count: %w", err)
	}

	var total int64
	if len(counts) > 0 {
		total = counts[0].Total
	}
	totalPages := (total + limit - 1) / limit

	return &models.CallLogPage{
		CallLogs:    rows,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
