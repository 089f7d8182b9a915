package mongostore

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"filmhub/internal/microservices/http-api/models"
)

// Each builder returns a fixed pipeline. Joins are $lookup equality joins on
// _id; $unwind keeps unmatched rows so dangling references produce empty
// joined fields rather than dropping the row.

func stage(op string, value any) bson.D {
	return bson.D{{Key: op, Value: value}}
}

func lookup(from, localField, as string) bson.D {
	return stage("$lookup", bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	})
}

func unwindPreserving(path string) bson.D {
	return stage("$unwind", bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	})
}

// genreCountPipeline groups films by the exact genre value; a missing genre
// groups under null.
func genreCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		stage("$group", bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}),
		stage("$sort", bson.D{{Key: "count", Value: -1}}),
	}
}

func averageRatingPipeline(filter models.AverageRatingFilter) mongo.Pipeline {
	p := mongo.Pipeline{
		stage("$group", bson.D{
			{Key: "_id", Value: "$film_id"},
			{Key: "average_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "review_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}),
	}
	if filter.Above != nil {
		p = append(p, stage("$match", bson.D{
			{Key: "average_rating", Value: bson.D{{Key: "$gt", Value: *filter.Above}}},
		}))
	}
	p = append(p, stage("$sort", bson.D{{Key: "average_rating", Value: -1}}))
	if filter.Limit > 0 {
		p = append(p, stage("$limit", int64(filter.Limit)))
	}
	return append(p,
		lookup(filmsCollection, "_id", "film"),
		unwindPreserving("$film"),
		stage("$project", bson.D{
			{Key: "_id", Value: 0},
			{Key: "film_id", Value: "$_id"},
			{Key: "title", Value: "$film.title"},
			{Key: "average_rating", Value: 1},
			{Key: "review_count", Value: 1},
		}),
	)
}

func filmReviewersPipeline(filmID string) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{{Key: "film_id", Value: filmID}}),
		stage("$sort", bson.D{{Key: "created_at", Value: 1}}),
		lookup(usersCollection, "user_id", "user"),
		unwindPreserving("$user"),
		stage("$project", bson.D{
			{Key: "_id", Value: 0},
			{Key: "review_id", Value: "$_id"},
			{Key: "user_id", Value: 1},
			{Key: "name", Value: "$user.name"},
			{Key: "rating", Value: 1},
			{Key: "comment", Value: 1},
		}),
	}
}

func reviewsAboveRatingPipeline(threshold, skip, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{{Key: "rating", Value: bson.D{{Key: "$gt", Value: threshold}}}}),
		stage("$sort", bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
		lookup(filmsCollection, "film_id", "film_info"),
		lookup(usersCollection, "user_id", "user_info"),
		unwindPreserving("$film_info"),
		unwindPreserving("$user_info"),
		stage("$project", bson.D{
			{Key: "_id", Value: 0},
			{Key: "rating", Value: 1},
			{Key: "comment", Value: 1},
			{Key: "film", Value: bson.D{
				{Key: "title", Value: "$film_info.title"},
				{Key: "director", Value: "$film_info.director"},
				{Key: "release_year", Value: "$film_info.release_year"},
				{Key: "genre", Value: "$film_info.genre"},
			}},
			{Key: "user", Value: bson.D{
				{Key: "name", Value: "$user_info.name"},
				{Key: "email", Value: "$user_info.email"},
			}},
		}),
		stage("$skip", int64(skip)),
		stage("$limit", int64(limit)),
	}
}
