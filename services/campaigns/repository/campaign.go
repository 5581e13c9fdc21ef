package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateCampaignMaster inserts the named campaign record
func (r *CampaignRepo) CreateCampaignMaster(ctx context.Context, master *models.CampaignMaster) error {
	now := time.Now()
	master.ID = primitive.NewObjectID()
	master.CreatedAt = now
	master.UpdatedAt = now
	if master.Status == "" {
		master.Status = models.CampaignPending
	}

	if _, err := r.campaignMasters.InsertOne(ctx, master); err != nil {
		return fmt.Errorf("failed to create campaign master: %w", err)
	}
	return nil
}

// MatchOrCreateContacts resolves imported rows to contact IDs. The phone
// number is the global identity: a number imported by any tenant is reused,
// never duplicated.
func (r *CampaignRepo) MatchOrCreateContacts(ctx context.Context, rows []models.ContactRow, createdBy primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(rows))

	for _, row := range rows {
		var existing models.ContactMaster
		err := r.contactMasters.FindOne(ctx, bson.M{"phoneNumber": row.PhoneNumber}).Decode(&existing)
		if err == nil {
			ids = append(ids, existing.ID)
			continue
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to look up contact: %w", err)
		}

		now := time.Now()
		contact := models.ContactMaster{
			ID:          primitive.NewObjectID(),
			UserName:    row.UserName,
			Email:       row.Email,
			PhoneNumber: row.PhoneNumber,
			CreatedBy:   createdBy,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := r.contactMasters.InsertOne(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
		ids = append(ids, contact.ID)
	}

	return ids, nil
}

// CreateCampaign inserts the campaign linkage record
func (r *CampaignRepo) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	now := time.Now()
	campaign.ID = primitive.NewObjectID()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if _, err := r.campaigns.InsertOne(ctx, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// CreateMember inserts the member assignment record
func (r *CampaignRepo) CreateMember(ctx context.Context, member *models.Member) error {
	now := time.Now()
	member.ID = primitive.NewObjectID()
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := r.members.InsertOne(ctx, member); err != nil {
		return fmt.Errorf("failed to create campaign member: %w", err)
	}
	return nil
}

// LinkMember back-links the member record onto its campaign
func (r *CampaignRepo) LinkMember(ctx context.Context, campaignID, memberID primitive.ObjectID) error {
	result, err := r.campaigns.UpdateOne(ctx,
		bson.M{"_id": campaignID},
		bson.M{"$set": bson.M{"member": memberID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to link campaign member: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: campaign not found", models.ErrNotFound)
	}
	return nil
}

// ListByCreator returns the summaries of campaigns the creator owns
func (r *CampaignRepo) ListByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.CampaignSummary, error) {
	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdBy": creatorID}}},
	}, summaryPipeline()...)

	return r.aggregateSummaries(ctx, pipeline)
}

// ListAll returns the summaries of every campaign across tenants
func (r *CampaignRepo) ListAll(ctx context.Context) ([]models.CampaignSummary, error) {
	return r.aggregateSummaries(ctx, summaryPipeline())
}

// summaryPipeline joins a campaign to its master, its member set and its
// creator, then regroups by master with one de-duplicated {name, id} pair per
// assigned member. Campaigns with no members survive the unwind.
func summaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         campaignMastersCollection,
			"localField":   "campaignMaster",
			"foreignField": "_id",
			"as":           "master",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         membersCollection,
			"localField":   "member",
			"foreignField": "_id",
			"as":           "memberSet",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "createdBy",
			"foreignField": "_id",
			"as":           "creator",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"master":    bson.M{"$arrayElemAt": bson.A{"$master", 0}},
			"memberSet": bson.M{"$arrayElemAt": bson.A{"$memberSet", 0}},
			"creator":   bson.M{"$arrayElemAt": bson.A{"$creator", 0}},
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$memberSet.userIds",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "memberSet.userIds",
			"foreignField": "_id",
			"as":           "memberUsers",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"memberUser": bson.M{"$arrayElemAt": bson.A{"$memberUsers", 0}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":               "$master._id",
			"campaignName":      bson.M{"$first": "$master.name"},
			"campaignStatus":    bson.M{"$first": "$master.status"},
			"campaignStartDate": bson.M{"$first": "$master.startDate"},
			"creatorName":       bson.M{"$first": "$creator.name"},
			"creatorRole":       bson.M{"$first": "$creator.role"},
			"creatorId":         bson.M{"$first": "$creator._id"},
			"members": bson.M{"$addToSet": bson.M{
				"memberName": "$memberUser.name",
				"memberId":   "$memberUser._id",
			}},
		}}},
	}
}

func (r *CampaignRepo) aggregateSummaries(ctx context.Context, pipeline mongo.Pipeline) ([]models.CampaignSummary, error) {
	cursor, err := r.campaigns.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.CampaignSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode campaign summaries: %w", err)
	}
	return summaries, nil
}
