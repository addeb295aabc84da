package api

import (
	"log"
	"strings"

	"github.com/example/user-admin-api/modules/auth"
	"github.com/example/user-admin-api/modules/users"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	auth  auth.Port
	users users.Port
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.Port, usersPort users.Port) *Handlers {
	return &Handlers{
		auth:  authPort,
		users: usersPort,
	}
}

// CreateSession handles POST /session: credential check and token issuance.
func (h *Handlers) CreateSession(c *fiber.Ctx) error {
	var body sessionBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, []string{"Invalid request body"})
	}
	if messages := validateBody(body); len(messages) > 0 {
		return badRequest(c, messages)
	}

	resp, err := h.auth.Login(c.UserContext(), body.NationalID, body.Password)
	if err != nil {
		return h.domainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(SessionResponse{
		Message: "Logged in",
		Token:   resp.Token,
	})
}

// ListUsers handles GET /users. Password hashes never reach this layer;
// the users module already projects them away.
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	list, err := h.users.List(c.UserContext())
	if err != nil {
		return h.domainError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

// CreateUser handles POST /users.
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var body createUserBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, []string{"Invalid request body"})
	}
	if messages := validateBody(body); len(messages) > 0 {
		return badRequest(c, messages)
	}

	birthDate, err := parseBirthDate(body.BirthDate)
	if err != nil {
		return badRequest(c, []string{"Birth date is invalid"})
	}

	created, err := h.users.Create(c.UserContext(), users.CreateUserRequest{
		Name:       body.Name,
		NationalID: body.NationalID,
		BirthDate:  birthDate,
		Password:   body.Password,
		IsAdmin:    *body.IsAdmin,
		Note:       body.Note,
	})
	if err != nil {
		return h.domainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(CreateUserResponse{
		Message: "User created",
		User: UserPayload{
			ID:         created.ID,
			Name:       created.Name,
			NationalID: created.NationalID,
			BirthDate:  created.BirthDate,
			Note:       created.Note,
			IsAdmin:    created.IsAdmin,
			CreatedAt:  created.CreatedAt,
		},
	})
}

// EditUser handles PUT /users/:id. Fields not supplied are left unchanged.
func (h *Handlers) EditUser(c *fiber.Ctx) error {
	var body editUserBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, []string{"Invalid request body"})
	}
	if messages := validateBody(body); len(messages) > 0 {
		return badRequest(c, messages)
	}

	updated, err := h.users.Edit(c.UserContext(), users.EditUserRequest{
		ID:      c.Params("id"),
		Note:    body.Note,
		IsAdmin: *body.IsAdmin,
	})
	if err != nil {
		return h.domainError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(EditUserResponse{
		Message: "User updated",
		Update: UpdatePayload{
			Note:    updated.Note,
			IsAdmin: updated.IsAdmin,
		},
	})
}

// DeleteUser handles DELETE /users/:id.
func (h *Handlers) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.domainError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// badRequest returns a 400 with the ordered list of validation messages.
func badRequest(c *fiber.Ctx, messages []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(messages)
}

// domainError translates service failures crossing the module boundary
// into HTTP responses. Errors travel between modules as messages, so the
// translation matches on known message fragments.
func (h *Handlers) domainError(c *fiber.Ctx, err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "incorrect national id/password"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Incorrect national id/password combination.",
		})
	case strings.Contains(msg, "already a user with that national id"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Status:  fiber.StatusConflict,
			Message: "There is already a user with that national id",
		})
	case strings.Contains(msg, "no user with that id"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Status:  fiber.StatusNotFound,
			Message: "There is no user with that id",
		})
	default:
		// Log the actual error but don't expose it to the client.
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
