package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longAnswer = "Use a context and cancel it when the caller returns."

func TestQA_AnonymousMakesNoRequests(t *testing.T) {
	e := newEnv(t)
	qa := NewQAService(e.client, anonymous, nil)
	ctx := context.Background()

	_, err := qa.ListDoubts(ctx, 1)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = qa.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = qa.Detail(ctx, "d1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = qa.AskDoubt(ctx, models.NewDoubt{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = qa.ToggleUpvote(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = qa.TrendingTags(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Empty(t, e.api.Requests())
}

func TestQA_AskDoubt_ShortTitleNeverSent(t *testing.T) {
	e := newEnv(t)
	junior := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	e.signIn(t, junior)
	qa := NewQAService(e.client, e.auth, nil)

	_, err := qa.AskDoubt(context.Background(), models.NewDoubt{
		Title:       "123456789",
		Description: strings.Repeat("d", 25),
		Tags:        []string{"go"},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Title must be at least 10 characters", ve.Message)
	assert.Empty(t, e.api.Requests())
	assert.Zero(t, e.api.DoubtCount())
}

func TestQA_AskDoubt_SendsCleanedPayload(t *testing.T) {
	e := newEnv(t)
	junior := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	e.signIn(t, junior)
	qa := NewQAService(e.client, e.auth, nil)

	d, err := qa.AskDoubt(context.Background(), models.NewDoubt{
		Title:       "  Why does my goroutine leak  ",
		Description: "It never exits after the request ends",
		Tags:        []string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Why does my goroutine leak", d.Title)
	assert.Equal(t, []string{"go"}, d.Tags)
	assert.Equal(t, junior.ID, d.Author.ID)
	assert.Equal(t, models.DoubtStatusOpen, d.Status)
	assert.Equal(t, 1, e.api.DoubtCount())
}

func TestQA_AskDoubt_MentorRejectedByServer(t *testing.T) {
	e := newEnv(t)
	mentor := e.api.SeedUser("Mia", "mia@x.io", "secret1", models.RoleMentor, true)
	e.signIn(t, mentor)
	qa := NewQAService(e.client, e.auth, nil)

	_, err := qa.AskDoubt(context.Background(), models.NewDoubt{
		Title:       "Why does my goroutine leak",
		Description: "It never exits after the request ends",
		Tags:        []string{"go"},
	})
	require.Error(t, err)
	assert.Equal(t, "Only juniors can post doubts", client.Message(err))
}

func TestQA_ListDoubts_NewestFirst(t *testing.T) {
	e := newEnv(t)
	junior := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	first := e.api.SeedDoubt(junior.ID, "First doubt here", "description of the first doubt", "go")
	second := e.api.SeedDoubt(junior.ID, "Second doubt here", "description of the second doubt", "go")
	e.signIn(t, junior)
	qa := NewQAService(e.client, e.auth, nil)

	page, err := qa.ListDoubts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, second, page.Items[0].ID)
	assert.Equal(t, first, page.Items[1].ID)
	assert.Equal(t, 2, page.Pagination.Total)
	assert.Contains(t, e.api.Requests()[0].Query, "page=1")
	assert.Contains(t, e.api.Requests()[0].Query, "limit=10")
}

func TestQA_Dashboard(t *testing.T) {
	e := newEnv(t)
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	other := e.api.SeedUser("Ola", "ola@x.io", "secret1", models.RoleJunior, false)
	mentor := e.api.SeedUser("Mia", "mia@x.io", "secret1", models.RoleMentor, true)
	mine := e.api.SeedDoubt(jun.ID, "My own doubt title", "description of my own doubt", "go")
	theirs := e.api.SeedDoubt(other.ID, "Their doubt title", "description of their doubt", "go")
	answered := e.api.SeedDoubt(other.ID, "Answered doubt title", "description of answered doubt", "go")
	e.api.SeedAnswer(answered, mentor.ID, longAnswer)

	t.Run("junior sees own doubts", func(t *testing.T) {
		e.signIn(t, jun)
		d, err := NewQAService(e.client, e.auth, nil).Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, jun.ID, d.User.ID)
		require.Len(t, d.Doubts, 1)
		assert.Equal(t, mine, d.Doubts[0].ID)
	})

	t.Run("mentor sees open and answered", func(t *testing.T) {
		e.signIn(t, mentor)
		d, err := NewQAService(e.client, e.auth, nil).Dashboard(context.Background())
		require.NoError(t, err)
		ids := make([]string, 0, len(d.Doubts))
		for _, x := range d.Doubts {
			ids = append(ids, x.ID)
		}
		assert.ElementsMatch(t, []string{mine, theirs, answered}, ids)
	})
}

func TestQA_Detail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	mentor := e.api.SeedUser("Mia", "mia@x.io", "secret1", models.RoleMentor, true)
	doubtID := e.api.SeedDoubt(jun.ID, "Why does my goroutine leak", "It never exits after the request ends", "go")
	a1 := e.api.SeedAnswer(doubtID, mentor.ID, longAnswer)
	a2 := e.api.SeedAnswer(doubtID, mentor.ID, "Check for blocked channel sends as well.")

	e.signIn(t, jun)
	qa := NewQAService(e.client, e.auth, nil)

	_, err := qa.PostComment(ctx, doubtID, "Thanks, trying now")
	require.NoError(t, err)
	_, err = qa.Reply(ctx, doubtID, a1, "That fixed it")
	require.NoError(t, err)
	_, err = qa.ToggleUpvote(ctx, a2)
	require.NoError(t, err)

	d, err := qa.Detail(ctx, doubtID)
	require.NoError(t, err)
	assert.Equal(t, doubtID, d.Doubt.ID)
	assert.Equal(t, models.DoubtStatusAnswered, d.Doubt.Status)
	require.Len(t, d.Answers, 2)

	byID := map[string]AnswerView{}
	for _, a := range d.Answers {
		byID[a.ID] = a
	}
	assert.False(t, byID[a1].Upvoted)
	assert.True(t, byID[a2].Upvoted)
	assert.Equal(t, 1, byID[a2].UpvoteCount)
	require.Len(t, byID[a1].Replies, 1)
	assert.Equal(t, "That fixed it", byID[a1].Replies[0].Content)
	assert.Empty(t, byID[a2].Replies)

	require.Len(t, d.Comments, 1, "replies are not top-level comments")
	assert.Equal(t, "Thanks, trying now", d.Comments[0].Content)
}

func TestQA_Detail_NotFound(t *testing.T) {
	e := newEnv(t)
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	e.signIn(t, jun)

	_, err := NewQAService(e.client, e.auth, nil).Detail(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Doubt not found", client.Message(err))
}

func TestQA_ToggleUpvote(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	mentor := e.api.SeedUser("Mia", "mia@x.io", "secret1", models.RoleMentor, true)
	doubtID := e.api.SeedDoubt(jun.ID, "Why does my goroutine leak", "It never exits after the request ends", "go")
	answerID := e.api.SeedAnswer(doubtID, mentor.ID, longAnswer)
	e.signIn(t, jun)
	qa := NewQAService(e.client, e.auth, nil)

	st, err := qa.ToggleUpvote(ctx, answerID)
	require.NoError(t, err)
	assert.Equal(t, models.UpvoteStatus{IsUpvoted: true, UpvoteCount: 1}, st)

	st, err = qa.ToggleUpvote(ctx, answerID)
	require.NoError(t, err)
	assert.Equal(t, models.UpvoteStatus{IsUpvoted: false, UpvoteCount: 0}, st)
}

func TestQA_PostAnswer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	approved := e.api.SeedUser("Mia", "mia@x.io", "secret1", models.RoleMentor, true)
	pending := e.api.SeedUser("Pat", "pat@x.io", "secret1", models.RoleMentor, false)
	doubtID := e.api.SeedDoubt(jun.ID, "Why does my goroutine leak", "It never exits after the request ends", "go")

	t.Run("junior is told locally", func(t *testing.T) {
		e.signIn(t, jun)
		e.api.ResetRequests()
		_, err := NewQAService(e.client, e.auth, nil).PostAnswer(ctx, doubtID, longAnswer)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Only mentors can post answers", ve.Message)
		assert.Empty(t, e.api.Requests())
	})

	t.Run("short answer", func(t *testing.T) {
		e.signIn(t, approved)
		_, err := NewQAService(e.client, e.auth, nil).PostAnswer(ctx, doubtID, "too short")
		assert.EqualError(t, err, "Answer must be at least 20 characters")
	})

	t.Run("pending mentor rejected by server", func(t *testing.T) {
		e.signIn(t, pending)
		_, err := NewQAService(e.client, e.auth, nil).PostAnswer(ctx, doubtID, longAnswer)
		require.Error(t, err)
		assert.Equal(t, "Your mentor account is pending approval", client.Message(err))
	})

	t.Run("approved mentor", func(t *testing.T) {
		e.signIn(t, approved)
		qa := NewQAService(e.client, e.auth, nil)
		a, err := qa.PostAnswer(ctx, doubtID, "  "+longAnswer+"  ")
		require.NoError(t, err)
		assert.Equal(t, longAnswer, a.Content)

		edited, err := qa.EditAnswer(ctx, a.ID, "An edited answer that is long enough.")
		require.NoError(t, err)
		assert.Equal(t, "An edited answer that is long enough.", edited.Content)

		require.NoError(t, qa.DeleteAnswer(ctx, a.ID))
		d, err := qa.Detail(ctx, doubtID)
		require.NoError(t, err)
		assert.Empty(t, d.Answers)
	})
}

func TestQA_RoleGatesBeforeRequests(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	junior := NewQAService(e.client, identity(models.RoleJunior), nil)
	_, err := junior.EditAnswer(ctx, "a1", longAnswer)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, junior.DeleteAnswer(ctx, "a1"), ErrForbidden)

	mentor := NewQAService(e.client, identity(models.RoleMentor), nil)
	assert.ErrorIs(t, mentor.DeleteDoubt(ctx, "d1"), ErrForbidden)

	assert.Empty(t, e.api.Requests())
}

func TestQA_DeleteDoubt(t *testing.T) {
	e := newEnv(t)
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	doubtID := e.api.SeedDoubt(jun.ID, "Why does my goroutine leak", "It never exits after the request ends", "go")
	e.signIn(t, jun)

	require.NoError(t, NewQAService(e.client, e.auth, nil).DeleteDoubt(context.Background(), doubtID))
	assert.Zero(t, e.api.DoubtCount())
}

func TestQA_TrendingTags(t *testing.T) {
	e := newEnv(t)
	jun := e.api.SeedUser("Jun", "jun@x.io", "secret1", models.RoleJunior, false)
	for i, tags := range [][]string{
		{"go", "sql"}, {"go", "python"}, {"go", "react"}, {"sql", "git"}, {"java"}, {"css"}, {"html"},
	} {
		e.api.SeedDoubt(jun.ID, "Seeded doubt title "+string(rune('a'+i)), "a description long enough", tags...)
	}
	e.signIn(t, jun)

	tags, err := NewQAService(e.client, e.auth, nil).TrendingTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, TrendingTagCount)
	assert.Equal(t, TrendingTag{Tag: "go", Count: 3, Category: TagCategory("go")}, tags[0])
	assert.Equal(t, TrendingTag{Tag: "sql", Count: 2, Category: TagCategory("sql")}, tags[1])
}
