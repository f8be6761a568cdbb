package repository_test

import (
	"context"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/pkg/test"
	"todoapi/pkg/test/factory"
)

func createOwner(t *testing.T, setup *test.Setup, email string) domain.User {
	t.Helper()

	user, err := setup.Users.Create(context.Background(), factory.NewUser(map[string]any{
		"Email":      email,
		"IsVerified": true,
	}))

	Expect(err).ToNot(HaveOccurred())

	return user
}

func TestTodoCreateAndGet(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()
	owner := createOwner(t, setup, "todo-owner@example.com")

	todo := factory.NewTodo(map[string]any{"Todo": "write tests", "UserID": owner.ID})

	created, err := setup.Todos.Create(ctx, todo)

	Expect(err).ToNot(HaveOccurred())
	Expect(created.ID).To(BeNumerically(">", 0))
	Expect(created.Status).To(Equal(domain.TodoStatusPending))

	found, err := setup.Todos.GetByUUID(ctx, created.UUID.String(), owner.ID)
	Expect(err).ToNot(HaveOccurred())
	Expect(found.Todo).To(Equal("write tests"))
}

func TestTodoOwnershipFilter(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()
	owner := createOwner(t, setup, "first@example.com")
	stranger := createOwner(t, setup, "second@example.com")

	created, err := setup.Todos.Create(ctx, factory.NewTodo(map[string]any{"UserID": owner.ID}))
	Expect(err).ToNot(HaveOccurred())

	_, err = setup.Todos.GetByUUID(ctx, created.UUID.String(), stranger.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))

	_, err = setup.Todos.UpdateByUUID(ctx, created.UUID.String(), stranger.ID, map[string]any{"todo": "stolen"})
	Expect(err).To(MatchError(domain.ErrNotFound))

	err = setup.Todos.DeleteByUUID(ctx, created.UUID.String(), stranger.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func TestTodoListCountAndSearch(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()
	owner := createOwner(t, setup, "list@example.com")

	for i := 0; i < 12; i++ {
		_, err := setup.Todos.Create(ctx, factory.NewTodo(map[string]any{
			"Todo":   fmt.Sprintf("chore %02d", i),
			"UserID": owner.ID,
		}))
		Expect(err).ToNot(HaveOccurred())
	}

	_, err := setup.Todos.Create(ctx, factory.NewTodo(map[string]any{
		"Todo":   "Call Dentist",
		"UserID": owner.ID,
	}))
	Expect(err).ToNot(HaveOccurred())

	todos, total, err := setup.Todos.List(ctx, owner.ID, port.TodoQuery{Page: 2, Limit: 10})
	Expect(err).ToNot(HaveOccurred())
	Expect(total).To(Equal(13))
	Expect(todos).To(HaveLen(3))

	todos, total, err = setup.Todos.List(ctx, owner.ID, port.TodoQuery{Page: 1, Limit: 10, Search: "dentist"})
	Expect(err).ToNot(HaveOccurred())
	Expect(total).To(Equal(1))
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Todo).To(Equal("Call Dentist"))
}

func TestTodoListSortWhitelist(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()
	owner := createOwner(t, setup, "sort@example.com")

	for _, text := range []string{"bravo", "alpha"} {
		_, err := setup.Todos.Create(ctx, factory.NewTodo(map[string]any{
			"Todo":   text,
			"UserID": owner.ID,
		}))
		Expect(err).ToNot(HaveOccurred())
	}

	// Unknown sort keys fall back to created_at instead of injecting SQL.
	todos, _, err := setup.Todos.List(ctx, owner.ID, port.TodoQuery{
		Page:  1,
		Limit: 10,
		Sort:  "; DROP TABLE todos",
		Order: "asc",
	})

	Expect(err).ToNot(HaveOccurred())
	Expect(todos).To(HaveLen(2))

	todos, _, err = setup.Todos.List(ctx, owner.ID, port.TodoQuery{Page: 1, Limit: 10, Sort: "todo", Order: "asc"})
	Expect(err).ToNot(HaveOccurred())
	Expect(todos[0].Todo).To(Equal("alpha"))
	Expect(todos[1].Todo).To(Equal("bravo"))
}

func TestTodoUpdatePartialSet(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()
	owner := createOwner(t, setup, "patch@example.com")

	created, err := setup.Todos.Create(ctx, factory.NewTodo(map[string]any{
		"Todo":   "original",
		"UserID": owner.ID,
	}))
	Expect(err).ToNot(HaveOccurred())

	updated, err := setup.Todos.UpdateByUUID(ctx, created.UUID.String(), owner.ID, map[string]any{
		"status": string(domain.TodoStatusProgress),
	})

	Expect(err).ToNot(HaveOccurred())
	Expect(updated.Status).To(Equal(domain.TodoStatusProgress))
	Expect(updated.Todo).To(Equal("original"))
}
