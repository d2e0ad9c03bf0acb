package shared

import (
	"math"
	"strconv"
	"strings"

	"lifecare/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	filtered := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			filtered = append(filtered, part)
		}
	}

	return strings.Join(filtered, cacheKeySeparator)
}

// Paginate returns the page of items selected by params along with the pagination metadata.
func Paginate[T any](items []T, params dto.QueryParams) ([]T, dto.Pagination) {
	total := len(items)
	meta := dto.Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		Total:     total,
		TotalPage: CalculateTotalPage(total, params.Limit),
	}

	if params.Limit <= 0 {
		return items, meta
	}

	// Compared by page index so an oversized page cannot overflow the offset.
	if total == 0 || params.Page-1 > (total-1)/params.Limit {
		return []T{}, meta
	}

	start := params.Offset()
	end := min(start+params.Limit, total)

	return items[start:end], meta
}
