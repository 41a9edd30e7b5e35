package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/entrhq/scribe/pkg/notes"
	"github.com/entrhq/scribe/pkg/types"
)

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(types.HealthResponse{
		Message: "scribe server is running!",
		Version: Version,
		Storage: s.store.Stats(),
	})
}

func (s *Server) listTools(c *fiber.Ctx) error {
	descriptors := make([]types.ToolDescriptor, 0, s.registry.Count())
	for _, tool := range s.registry.List() {
		if !s.filter.Allows(tool.Name()) {
			continue
		}
		descriptors = append(descriptors, types.ToolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.Schema(),
		})
	}
	return c.JSON(descriptors)
}

func (s *Server) callTool(c *fiber.Ctx) error {
	var req types.CallToolRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(types.ErrorResponse{Error: "invalid request body"})
	}

	tool, ok := s.registry.Get(req.Name)
	if !ok || !s.filter.Allows(req.Name) {
		return c.JSON(types.NewTextResponse(fmt.Sprintf("Unknown tool: %s", req.Name), true))
	}

	args := req.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	result, err := tool.Execute(c.UserContext(), args)
	if err != nil {
		s.log.Errorf("tool %s failed: %v", req.Name, err)
		return c.JSON(types.NewTextResponse(fmt.Sprintf("Error executing tool %s: %v", req.Name, err), true))
	}

	return c.JSON(types.NewTextResponse(result.Text, result.IsError))
}

func (s *Server) listNotes(c *fiber.Ctx) error {
	return c.JSON(s.store.List())
}

func (s *Server) createNote(c *fiber.Ctx) error {
	var req types.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(types.ErrorResponse{Error: "invalid request body"})
	}

	note, err := s.store.Add(req.Title, req.Content)
	if err != nil {
		if errors.Is(err, notes.ErrValidation) {
			c.Status(fiber.StatusBadRequest)
		} else {
			s.log.Errorf("failed to persist note: %v", err)
			c.Status(fiber.StatusInternalServerError)
		}
		return c.JSON(types.ErrorResponse{Error: err.Error()})
	}

	c.Status(fiber.StatusCreated)
	return c.JSON(note)
}

func (s *Server) getNote(c *fiber.Ctx) error {
	id := noteID(c)

	note, ok := s.store.Get(id)
	if !ok {
		c.Status(fiber.StatusNotFound)
		return c.JSON(types.ErrorResponse{Error: "Note not found"})
	}
	return c.JSON(note)
}

func (s *Server) updateNote(c *fiber.Ctx) error {
	id := noteID(c)

	var req types.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(types.ErrorResponse{Error: "invalid request body"})
	}

	ok, err := s.store.Update(id, req.Title, req.Content)
	if !ok {
		c.Status(fiber.StatusNotFound)
		return c.JSON(types.ErrorResponse{Error: "Note not found"})
	}
	if err != nil {
		s.log.Errorf("failed to persist note %d: %v", id, err)
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(types.ErrorResponse{Error: err.Error()})
	}

	note, _ := s.store.Get(id)
	return c.JSON(note)
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	id := noteID(c)

	ok, err := s.store.Delete(id)
	if !ok {
		c.Status(fiber.StatusNotFound)
		return c.JSON(types.ErrorResponse{Error: "Note not found"})
	}
	if err != nil {
		s.log.Errorf("failed to persist after deleting note %d: %v", id, err)
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(types.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(types.MessageResponse{Message: fmt.Sprintf("Note %d deleted successfully", id)})
}

// noteID parses the :noteID route parameter. Unparseable values become
// 0, which no note ever has, so lookups miss naturally.
func noteID(c *fiber.Ctx) int {
	id, err := strconv.Atoi(c.Params("noteID"))
	if err != nil {
		return 0
	}
	return id
}
