package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// ConformReviews cleans the raw review extract. Scores outside [1,5] reject
// the row; everything else is derived, not rejecting:
//
//   - the textual category for the score (5=Excellent .. 1=Very Poor),
//   - has_comment, true when title or message is non-empty after trimming,
//   - two validity flags recording whether the raw timestamp strings parse.
//     Unparseable timestamps are kept as nulls for quality reporting.
//
// The same review_id can legitimately appear for several orders, so the
// natural key is (review_id, order_id).
func ConformReviews(raws []models.RawReview) ([]models.Review, StageReport) {
	report := newReport("conform_order_reviews", len(raws))

	type reviewKey struct {
		reviewId string
		orderId  string
	}
	seen := make(map[reviewKey]struct{}, len(raws))
	out := make([]models.Review, 0, len(raws))
	for _, raw := range raws {
		reviewId := CleanString(raw.ReviewId)
		orderId := CleanString(raw.OrderId)
		if reviewId == "" || orderId == "" {
			report.Rejected++
			continue
		}
		key := reviewKey{reviewId: reviewId, orderId: orderId}
		if _, dup := seen[key]; dup {
			report.Rejected++
			continue
		}
		score, ok := parseInt(raw.ReviewScore)
		if !ok {
			report.Rejected++
			continue
		}
		category, ok := models.ReviewCategoryForScore(score)
		if !ok {
			report.Rejected++
			continue
		}

		title := CleanString(raw.CommentTitle)
		message := CleanString(raw.CommentMessage)
		creation := parseTimestamp(raw.CreationDate)
		answer := parseTimestamp(raw.AnswerTimestamp)

		seen[key] = struct{}{}
		out = append(out, models.Review{
			ReviewId:               reviewId,
			OrderId:                orderId,
			ReviewScore:            score,
			ReviewCategory:         category,
			CommentTitle:           title,
			CommentMessage:         message,
			HasComment:             title != "" || message != "",
			CreationDate:           creation,
			AnswerTimestamp:        answer,
			IsCreationDateValid:    creation != nil,
			IsAnswerTimestampValid: answer != nil,
		})
	}
	report.close()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ReviewId != out[j].ReviewId {
			return out[i].ReviewId < out[j].ReviewId
		}
		return out[i].OrderId < out[j].OrderId
	})
	return out, report
}
