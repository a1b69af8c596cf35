package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/course-builder/internal/types"
)

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	CourseID           string `json:"courseId"`
	ContinueGeneration *bool  `json:"continueGeneration,omitempty"`
	MaterialType       string `json:"materialType,omitempty"`
}

// GenerateResponse is the body of a successful POST /generate.
type GenerateResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	MaterialID string `json:"materialId,omitempty"`
}

// handleCreateCourse creates a course with its eight pending materials
func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var input types.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	course, err := s.orchestrator.CreateCourse(r.Context(), &input)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, course)
}

// handleListCourses lists recent courses
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	courses, err := s.store.ListCourses(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if courses == nil {
		courses = []types.Course{}
	}
	s.jsonResponse(w, http.StatusOK, courses)
}

// handleGetCourse retrieves one course
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	course, err := s.store.GetCourse(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if course == nil {
		s.errorResponse(w, http.StatusNotFound, "course not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, course)
}

// handleListMaterials lists a course's materials in step order
func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	materials, err := s.store.ListMaterials(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if materials == nil {
		materials = []types.Material{}
	}
	s.jsonResponse(w, http.StatusOK, materials)
}

// handleGetPipeline retrieves a course's pipeline state
func (s *Server) handleGetPipeline(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := s.store.GetPipeline(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		s.errorResponse(w, http.StatusNotFound, "pipeline not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleGenerate performs one single-step advance of a course's pipeline
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ContinueGeneration != nil && !*req.ContinueGeneration {
		s.errorResponse(w, http.StatusBadRequest, "continueGeneration must be true when present")
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid courseId")
		return
	}

	result, err := s.orchestrator.Advance(r.Context(), courseID, req.MaterialType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := GenerateResponse{Success: true, Message: result.Message}
	if result.MaterialID != nil {
		resp.MaterialID = result.MaterialID.String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetMaterial retrieves one material
func (s *Server) handleGetMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	material, err := s.store.GetMaterial(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if material == nil {
		s.errorResponse(w, http.StatusNotFound, "material not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, material)
}

// approveRequest optionally carries reviewer-edited content.
type approveRequest struct {
	ApprovedContent *string `json:"approvedContent,omitempty"`
}

// handleApproveMaterial records a human approval
func (s *Server) handleApproveMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req approveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	material, err := s.orchestrator.Approve(r.Context(), id, req.ApprovedContent)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, material)
}

// handleRejectMaterial records a human rejection
func (s *Server) handleRejectMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	material, err := s.orchestrator.Reject(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, material)
}

// handleUpdateMaterial replaces the approved content of a reviewed material.
// Equivalent to an approval carrying edited content.
func (s *Server) handleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ApprovedContent == nil || *req.ApprovedContent == "" {
		s.errorResponse(w, http.StatusBadRequest, "approvedContent is required")
		return
	}

	material, err := s.orchestrator.Approve(r.Context(), id, req.ApprovedContent)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, material)
}

// pathUUID parses the named path parameter as a UUID
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
