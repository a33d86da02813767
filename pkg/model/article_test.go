package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParsePublishState(t *testing.T) {
	state, err := ParsePublishState("")
	assert.NoError(t, err)
	assert.Equal(t, PublishStateDraft, state)

	state, err = ParsePublishState("draft")
	assert.NoError(t, err)
	assert.Equal(t, PublishStateDraft, state)

	state, err = ParsePublishState("published")
	assert.NoError(t, err)
	assert.Equal(t, PublishStatePublished, state)

	_, err = ParsePublishState("archived")
	assert.True(t, errors.Is(err, ErrInvalidPublishState))
}

func TestDecideVisibility(t *testing.T) {
	const owner, other uint64 = 1, 2

	cases := []struct {
		state       PublishState
		requesterID uint64
		expect      Visibility
	}{
		{PublishStatePublished, owner, VisibilityAllow},
		{PublishStatePublished, other, VisibilityAllow},
		{PublishStatePublished, 0, VisibilityAllow},
		{PublishStateDraft, owner, VisibilityRedirectToOwnerView},
		{PublishStateDraft, other, VisibilityDeny},
		{PublishStateDraft, 0, VisibilityDeny},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, DecideVisibility(c.state, owner, c.requesterID), "%s/%d", c.state, c.requesterID)
	}
}

func TestArticleOwnership(t *testing.T) {
	article := &Article{UserID: 1}
	assert.False(t, article.IsPersisted())
	assert.True(t, article.IsOwnedBy(1))
	assert.False(t, article.IsOwnedBy(2))
	assert.False(t, (&Article{}).IsOwnedBy(0))
	assert.Equal(t, VisibilityDeny, article.VisibilityFor(2))
}

func TestApplyRevision(t *testing.T) {
	article := &Article{ID: 1, Title: "old"}
	article.ApplyRevision(&Revision{Title: "new", Body: "body", Note: "note"}, []string{"go"}, PublishStatePublished)

	assert.Equal(t, "new", article.Title)
	assert.Equal(t, "body", article.Body)
	assert.Equal(t, "note", article.Note)
	assert.Equal(t, []string{"go"}, []string(article.Tags))
	assert.True(t, article.IsPublished())
}
