// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"overture/models"
)

// ListByDate returns confirmed bookings active on the given day, including
// multi-day bookings that started earlier and are still running.
func (r *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":     bson.M{"$lte": date},
		"date_end": bson.M{"$gte": date},
		"status":   models.BookingStatusConfirmed,
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListRange returns confirmed bookings whose booked days intersect [from, to].
func (r *mongoBookingRepo) ListRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":     bson.M{"$lte": to},
		"date_end": bson.M{"$gte": from},
		"status":   models.BookingStatusConfirmed,
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings in [%s, %s]: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CountsByDay returns the number of confirmed bookings active on each day
// of [from, to]. Multi-day bookings count once per day they cover.
func (r *mongoBookingRepo) CountsByDay(ctx context.Context, from, to string) (map[string]int, error) {
	bookings, err := r.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, b := range bookings {
		start, err := time.Parse("2006-01-02", b.Date)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", b.DateEnd)
		if err != nil {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			day := d.Format("2006-01-02")
			if day >= from && day <= to {
				counts[day]++
			}
		}
	}
	return counts, nil
}

// CountOverlapping counts confirmed bookings of the same room whose booked
// days and daily time span both intersect the candidate booking.
func (r *mongoBookingRepo) CountOverlapping(ctx context.Context, room, date, dateEnd string, start, end int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room":     room,
		"status":   models.BookingStatusConfirmed,
		"date":     bson.M{"$lte": dateEnd},
		"date_end": bson.M{"$gte": date},
		"start":    bson.M{"$lt": end},
		"end":      bson.M{"$gt": start},
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count, nil
}

// OccupancySummary aggregates confirmed bookings per room over [from, to].
func (r *mongoBookingRepo) OccupancySummary(ctx context.Context, from, to string) ([]models.RoomOccupancy, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date":     bson.M{"$lte": to},
			"date_end": bson.M{"$gte": from},
			"status":   models.BookingStatusConfirmed,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$room",
			"bookings": bson.M{"$sum": 1},
			"booked_hours": bson.M{"$sum": bson.M{
				"$multiply": bson.A{
					bson.M{"$divide": bson.A{bson.M{"$subtract": bson.A{"$end", "$start"}}, 60}},
					"$total_days",
				},
			}},
			"revenue": bson.M{"$sum": "$total_price"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate occupancy: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.RoomOccupancy
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding occupancy rows: %w", err)
	}
	return rows, nil
}
