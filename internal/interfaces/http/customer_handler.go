package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/client-management/internal/application/customer"
	"github.com/jhoicas/client-management/internal/application/dto"
)

var _ CustomerService = (*customer.UseCase)(nil)

// CustomerService operaciones de clientes que expone la API. customer.UseCase la implementa.
type CustomerService interface {
	List(ctx context.Context, in dto.ListCustomersRequest) ([]dto.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) error
	Delete(ctx context.Context, id int64) error
}

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc  CustomerService
	log zerolog.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc CustomerService, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Description  Filtra por subcadena de nombre y teléfono (distingue mayúsculas), ordena y pagina. Resultados en caché 5 minutos.
// @Tags         customers
// @Produce      json
// @Param        name        query  string  false  "Subcadena del nombre"
// @Param        phone       query  string  false  "Subcadena del teléfono"
// @Param        sortBy      query  string  false  "id | name | phone"  default(id)
// @Param        ascending   query  bool    false  "Orden ascendente"   default(true)
// @Param        pageNumber  query  int     false  "Página (desde 1)"   default(1)
// @Param        pageSize    query  int     false  "Tamaño de página"  default(10)
// @Success      200  {array}   dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	in, field, ok := parseListQuery(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidQuery, "parámetro inválido: "+field)
	}
	list, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(list)
}

// parseListQuery lee los parámetros del listado. Un parámetro ausente o vacío toma su valor por defecto;
// uno presente que no se puede interpretar devuelve ok=false con su nombre.
func parseListQuery(c *fiber.Ctx) (in dto.ListCustomersRequest, field string, ok bool) {
	in = dto.NewListCustomersRequest()
	in.Name = c.Query("name")
	in.Phone = c.Query("phone")
	if s := c.Query("sortBy"); s != "" {
		in.SortBy = s
	}
	if s := c.Query("ascending"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return in, "ascending", false
		}
		in.Ascending = b
	}
	if s := c.Query("pageNumber"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, "pageNumber", false
		}
		in.PageNumber = n
	}
	if s := c.Query("pageSize"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, "pageSize", false
		}
		in.PageSize = n
	}
	return in, "", true
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Description  Crea el cliente y su contacto en una sola transacción.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Header       201   {string}  Location  "/api/customers/{id}"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	c.Location("/api/customers/" + strconv.FormatInt(out.ID, 10))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Solo se aplican los campos presentes. El teléfono se cambia con contact.phone.
// @Tags         customers
// @Accept       json
// @Param        id    path  int                        true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a cambiar"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "id inválido")
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Elimina el cliente y su contacto.
// @Tags         customers
// @Param        id   path  int  true  "ID del cliente"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
