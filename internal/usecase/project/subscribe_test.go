package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

func TestAuthorizeSubscription(t *testing.T) {
	f := setup(t)
	uc := NewAuthorizeSubscription(f.repo)
	ctx := context.Background()

	code := func(err error) string {
		c, _ := httperr.BusinessCode(err)
		return c
	}

	assert.NoError(t, uc.Execute(ctx, assigned, realtime.Filter{Table: realtime.TableRequests, Column: "pro_id", Value: "pro-1"}))
	assert.NoError(t, uc.Execute(ctx, owner, realtime.Filter{Table: realtime.TablePhases, Column: "project_id", Value: f.p.ID}))
	assert.NoError(t, uc.Execute(ctx, assigned, realtime.Filter{Table: realtime.TableProjects, Column: "id", Value: f.p.ID}))

	err := uc.Execute(ctx, stranger, realtime.Filter{Table: realtime.TableRequests, Column: "pro_id", Value: "pro-1"})
	assert.Equal(t, "forbidden", code(err))

	err = uc.Execute(ctx, stranger, realtime.Filter{Table: realtime.TableCosts, Column: "project_id", Value: f.p.ID})
	assert.Equal(t, "project_not_found", code(err))

	err = uc.Execute(ctx, owner, realtime.Filter{Table: "users", Column: "id", Value: "x"})
	assert.Equal(t, "invalid_filter", code(err))
}
