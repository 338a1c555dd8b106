package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/auth"
	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/application/usecase"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/validate"
)

// UserHandler maneja registro, login, listado, actualización y borrado de usuarios.
type UserHandler struct {
	authUC *auth.UseCase
	userUC *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(authUC *auth.UseCase, userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{authUC: authUC, userUC: userUC}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Param        role    query  string  false  "ADMIN | CUSTOMER | SUPPLIER"
// @Param        sortBy  query  string  false  "campo de orden"
// @Param        sort    query  string  false  "asc | desc"
// @Param        limit   query  int     false  "máximo de filas"
// @Param        offset  query  int     false  "filas a saltar"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	role := c.Query("role")
	sortBy := c.Query("sortBy")
	sort := c.Query("sort")
	limit := c.Query("limit")
	offset := c.Query("offset")

	if res := validate.UsersQuery(role, sortBy, sort, limit, offset); !res.OK() {
		return Error(c, res.Err())
	}
	opts := listing.Parse(sortBy, sort, limit, offset)
	if role != "" {
		opts = opts.WithEq("role", role)
	}
	users, err := h.userUC.List(opts)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "User retrieved successfully", len(users), fiber.Map{"users": users})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, repeatPassword, role"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Router       /api/v1/users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	if res := validate.UserCreation(in.Name, in.Email, in.Password, in.RepeatPassword, in.Role); !res.OK() {
		return Error(c, res.Err())
	}
	user, err := h.authUC.Register(in)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusCreated, "User registered successfully", 1, fiber.Map{"user": user})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	if res := validate.UserLogin(in.Email, in.Password); !res.OK() {
		return Error(c, res.Err())
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		return Error(c, err)
	}
	return SuccessWithToken(c, fiber.StatusOK, "Login success!", out.Token, 1, fiber.Map{"user": out.User})
}

// Update godoc
// @Summary      Actualizar nombre y email del propio usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "id del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "name, email"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return Error(c, domain.BadRequest("Request body is invalid"))
	}
	if res := validate.UserUpdate(id, in.Name, in.Email); !res.OK() {
		return Error(c, res.Err())
	}
	user, err := h.userUC.Update(GetUserID(c), validate.Int(id), in)
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusCreated, "User updated successfully", 1, fiber.Map{"user": user})
}

// Delete godoc
// @Summary      Borrar usuario y sus pedidos (solo admin)
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "id del usuario"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Security     BearerAuth
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if res := validate.NumericID("User", id); !res.OK() {
		return Error(c, res.Err())
	}
	user, err := h.userUC.Delete(c.Context(), validate.Int(id))
	if err != nil {
		return Error(c, err)
	}
	return Success(c, fiber.StatusOK, "All user data deleted successfully", 1, fiber.Map{"user": user})
}
