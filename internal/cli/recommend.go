package cli

import (
	"fmt"

	"github.com/ritual-app/ritual/internal/constants"
	"github.com/ritual-app/ritual/internal/icons"
)

type RecommendCmd struct {
	Limit int `help:"Maximum number of suggestions." default:"3"`
}

func (c *RecommendCmd) Run(ctx *Context) error {
	limit := c.Limit
	if limit <= 0 {
		limit = constants.DefaultRecommendationLimit
	}

	recs := ctx.Session.Recommendations(limit)
	if len(recs) == 0 {
		fmt.Println("No suggestions right now.")
		return nil
	}

	fmt.Println("Suggested habits:")
	for _, r := range recs {
		fmt.Printf("%s %s (%s, %s)\n   %s\n", icons.Glyph(r.Icon), r.Name, r.Frequency, r.Category, r.Description)
	}
	return nil
}
