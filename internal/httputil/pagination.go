package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParsePagination parses the offset and limit query parameters.
// Defaults are 0 for offset and 50 for limit; limit cannot exceed 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = ParseLimit(c, 50, 100)
	if err != nil {
		return 0, 0, err
	}

	return offset, limit, nil
}

// ParseLimit parses the limit query parameter, returning defaultLimit when it is absent.
func ParseLimit(c *gin.Context, defaultLimit, maxLimit int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxLimit)
	}
	return limit, nil
}

// ParseUUIDParam parses a UUID path parameter.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s parameter: must be a valid UUID", name)
	}
	return id, nil
}
