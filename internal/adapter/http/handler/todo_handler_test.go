package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/core/domain"
	"todoapi/pkg/test/factory"
)

type TodoHandlerSuite struct {
	suite.Suite
	env        *testEnv
	owner      domain.User
	ownerToken string
	other      domain.User
	otherToken string
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

func (s *TodoHandlerSuite) SetupTest() {
	s.env = newTestEnv(s.T())

	s.owner, s.ownerToken = s.createVerifiedUser("owner@example.com")
	s.other, s.otherToken = s.createVerifiedUser("other@example.com")
}

func (s *TodoHandlerSuite) createVerifiedUser(email string) (domain.User, string) {
	user := factory.NewUser(map[string]any{"Email": email, "IsVerified": true})
	created, err := s.env.Setup.Users.Create(context.Background(), user)
	Expect(err).ToNot(HaveOccurred())

	token, err := s.env.Tokens.CreateToken(created.UUID.String(), time.Hour)
	Expect(err).ToNot(HaveOccurred())

	return created, token
}

func (s *TodoHandlerSuite) createTodo(userID int, text string) domain.Todo {
	todo := factory.NewTodo(map[string]any{"Todo": text, "UserID": userID})
	created, err := s.env.Setup.Todos.Create(context.Background(), todo)
	Expect(err).ToNot(HaveOccurred())

	return created
}

func (s *TodoHandlerSuite) TestCreateTodoDefaultsToPending() {
	body := `{"todo": "buy milk", "date": "2024-01-01"}`
	rr := s.env.request("POST", "/api/todos", body, s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	todoData := dataField(parseEnvelope(rr))["todo"].(map[string]any)

	Expect(todoData["todo"]).To(Equal("buy milk"))
	Expect(todoData["status"]).To(Equal("Pending"))

	_, err := uuid.Parse(todoData["id"].(string))
	Expect(err).ToNot(HaveOccurred())
}

func (s *TodoHandlerSuite) TestCreateTodoValidation() {
	rr := s.env.request("POST", "/api/todos", `{"date": "2024-01-01"}`, s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusUnprocessableEntity))
	Expect(parseEnvelope(rr).Error).To(ContainSubstring("Todo"))
}

func (s *TodoHandlerSuite) TestGetTodo() {
	todo := s.createTodo(s.owner.ID, "water plants")

	rr := s.env.request("GET", "/api/todos/"+todo.UUID.String(), "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	todoData := dataField(parseEnvelope(rr))["todo"].(map[string]any)
	Expect(todoData["todo"]).To(Equal("water plants"))
}

func (s *TodoHandlerSuite) TestGetTodoInvalidIDFormat() {
	rr := s.env.request("GET", "/api/todos/not-a-uuid", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(parseEnvelope(rr).Error).To(Equal("Invalid Todo ID format"))
}

func (s *TodoHandlerSuite) TestTodoInvisibleToNonOwner() {
	todo := s.createTodo(s.owner.ID, "private task")

	rr := s.env.request("GET", "/api/todos/"+todo.UUID.String(), "", s.otherToken)
	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(parseEnvelope(rr).Error).To(Equal("Todo not found"))

	rr = s.env.request("PUT", "/api/todos/"+todo.UUID.String(), `{"todo": "hijacked", "date": "2024-01-01"}`, s.otherToken)
	Expect(rr.Code).To(Equal(http.StatusNotFound))

	rr = s.env.request("DELETE", "/api/todos/"+todo.UUID.String(), "", s.otherToken)
	Expect(rr.Code).To(Equal(http.StatusNotFound))

	stored, err := s.env.Setup.Todos.GetByUUID(context.Background(), todo.UUID.String(), s.owner.ID)
	Expect(err).ToNot(HaveOccurred())
	Expect(stored.Todo).To(Equal("private task"))
}

func (s *TodoHandlerSuite) TestUpdateTodo() {
	todo := s.createTodo(s.owner.ID, "old text")

	body := `{"todo": "new text", "date": "2025-06-15"}`
	rr := s.env.request("PUT", "/api/todos/"+todo.UUID.String(), body, s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	todoData := dataField(parseEnvelope(rr))["todo"].(map[string]any)
	Expect(todoData["todo"]).To(Equal("new text"))
}

func (s *TodoHandlerSuite) TestStatusPatchChangesOnlyStatus() {
	todo := s.createTodo(s.owner.ID, "stable text")

	rr := s.env.request("PATCH", "/api/todos/status/"+todo.UUID.String(), `{"status": "Completed"}`, s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	stored, err := s.env.Setup.Todos.GetByUUID(context.Background(), todo.UUID.String(), s.owner.ID)
	Expect(err).ToNot(HaveOccurred())
	Expect(stored.Status).To(Equal(domain.TodoStatusCompleted))
	Expect(stored.Todo).To(Equal("stable text"))
	Expect(stored.Date.Unix()).To(Equal(todo.Date.Unix()))
}

func (s *TodoHandlerSuite) TestStatusPatchRejectsUnknownValue() {
	todo := s.createTodo(s.owner.ID, "task")

	rr := s.env.request("PATCH", "/api/todos/status/"+todo.UUID.String(), `{"status": "Done"}`, s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerSuite) TestDeleteTodo() {
	todo := s.createTodo(s.owner.ID, "short lived")

	rr := s.env.request("DELETE", "/api/todos/"+todo.UUID.String(), "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(parseEnvelope(rr).Message).To(Equal("Todo deleted successfully"))

	rr = s.env.request("GET", "/api/todos/"+todo.UUID.String(), "", s.ownerToken)
	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestListPagination() {
	for i := 0; i < 15; i++ {
		s.createTodo(s.owner.ID, fmt.Sprintf("task %02d", i))
	}

	rr := s.env.request("GET", "/api/todos?page=2&limit=10", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	data := dataField(parseEnvelope(rr))

	Expect(data["todos"]).To(HaveLen(5))
	Expect(data["page"]).To(BeNumerically("==", 2))
	Expect(data["limit"]).To(BeNumerically("==", 10))
	Expect(data["total"]).To(BeNumerically("==", 15))
	Expect(data["pages"]).To(BeNumerically("==", 2))
}

func (s *TodoHandlerSuite) TestListOutOfRangePage() {
	for i := 0; i < 5; i++ {
		s.createTodo(s.owner.ID, fmt.Sprintf("task %d", i))
	}

	rr := s.env.request("GET", "/api/todos?page=3&limit=10", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(parseEnvelope(rr).Error).To(Equal("No todos found"))
}

func (s *TodoHandlerSuite) TestListEmpty() {
	rr := s.env.request("GET", "/api/todos", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(parseEnvelope(rr).Error).To(Equal("No todos found"))
}

func (s *TodoHandlerSuite) TestListSearchIsCaseInsensitive() {
	s.createTodo(s.owner.ID, "Buy Milk")
	s.createTodo(s.owner.ID, "walk dog")

	rr := s.env.request("GET", "/api/todos?search=MILK", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	data := dataField(parseEnvelope(rr))
	todos := data["todos"].([]any)

	Expect(todos).To(HaveLen(1))
	Expect(todos[0].(map[string]any)["todo"]).To(Equal("Buy Milk"))
}

func (s *TodoHandlerSuite) TestListSortAscendingByText() {
	s.createTodo(s.owner.ID, "bravo")
	s.createTodo(s.owner.ID, "alpha")
	s.createTodo(s.owner.ID, "charlie")

	rr := s.env.request("GET", "/api/todos?sort=todo&order=asc", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	todos := dataField(parseEnvelope(rr))["todos"].([]any)

	Expect(todos[0].(map[string]any)["todo"]).To(Equal("alpha"))
	Expect(todos[2].(map[string]any)["todo"]).To(Equal("charlie"))
}

func (s *TodoHandlerSuite) TestListExcludesOtherUsersTodos() {
	s.createTodo(s.owner.ID, "mine")
	s.createTodo(s.other.ID, "theirs")

	rr := s.env.request("GET", "/api/todos", "", s.ownerToken)

	Expect(rr.Code).To(Equal(http.StatusOK))

	todos := dataField(parseEnvelope(rr))["todos"].([]any)

	Expect(todos).To(HaveLen(1))
	Expect(todos[0].(map[string]any)["todo"]).To(Equal("mine"))
}
