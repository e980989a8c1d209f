package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cargoparser/database"
	"cargoparser/export"
	"cargoparser/parser"
	"cargoparser/server/middleware"
)

// ParseRequest тело запроса на разбор сообщения
type ParseRequest struct {
	Text string `json:"text" binding:"required"`
	// Save сохранить собранную запись в реестр
	Save bool `json:"save"`
}

// ParseResponse результат разбора
type ParseResponse struct {
	RequestID string        `json:"request_id"`
	Result    parser.Result `json:"result"`
	Record    interface{}   `json:"record,omitempty"`
	SavedID   int64         `json:"saved_id,omitempty"`
}

func (s *Server) abortError(c *gin.Context, status int, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{
		"error":      err.Error(),
		"request_id": middleware.RequestIDFromGin(c),
	})
}

// handleParse разбирает сообщение и при необходимости сохраняет запись
func (s *Server) handleParse(c *gin.Context) {
	kind, err := parser.ParseKind(c.Param("kind"))
	if err != nil {
		s.abortError(c, http.StatusBadRequest, err)
		return
	}

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := s.parser.Parse(kind, req.Text)
	if err != nil {
		s.abortError(c, http.StatusBadRequest, err)
		return
	}

	resp := ParseResponse{
		RequestID: middleware.RequestIDFromGin(c),
		Result:    result,
	}

	ctx := c.Request.Context()
	switch kind {
	case parser.KindDriver:
		rec := parser.DriverRecordFrom(result)
		resp.Record = rec
		if req.Save {
			id, err := s.db.SaveDriver(ctx, rec)
			if err != nil {
				s.abortError(c, http.StatusUnprocessableEntity, err)
				return
			}
			resp.SavedID = id
		}
	case parser.KindCarrier, parser.KindClient:
		rec := parser.OrganizationRecordFrom(result)
		resp.Record = rec
		if req.Save {
			orgKind := database.OrgCarrier
			if kind == parser.KindClient {
				orgKind = database.OrgClient
			}
			id, err := s.db.SaveOrganization(ctx, orgKind, rec)
			if err != nil {
				s.abortError(c, http.StatusUnprocessableEntity, err)
				return
			}
			resp.SavedID = id
		}
	case parser.KindTransportation:
		rec := parser.TransportationRecordFrom(result)
		resp.Record = rec
		if req.Save {
			id, err := s.db.SaveTransportation(ctx, rec)
			if err != nil {
				s.abortError(c, http.StatusUnprocessableEntity, err)
				return
			}
			resp.SavedID = id
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListDrivers(c *gin.Context) {
	drivers, err := s.db.ListDrivers(c.Request.Context())
	if err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(drivers), "drivers": drivers})
}

func (s *Server) handleFindDriver(c *gin.Context) {
	driver, err := s.db.FindDriverByName(c.Request.Context(), c.Param("name"))
	if errors.Is(err, database.ErrNotFound) {
		s.abortError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (s *Server) handleDeleteDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.abortError(c, http.StatusBadRequest, fmt.Errorf("invalid driver id: %w", err))
		return
	}
	err = s.db.DeleteDriver(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		s.abortError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) listOrganizations(c *gin.Context, kind database.OrgKind) {
	orgs, err := s.db.ListOrganizations(c.Request.Context(), kind)
	if err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(orgs), "organizations": orgs})
}

func (s *Server) handleListClients(c *gin.Context) {
	s.listOrganizations(c, database.OrgClient)
}

func (s *Server) handleListCarriers(c *gin.Context) {
	s.listOrganizations(c, database.OrgCarrier)
}

func (s *Server) handleDeleteOrganization(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.abortError(c, http.StatusBadRequest, fmt.Errorf("invalid organization id: %w", err))
		return
	}
	err = s.db.DeleteOrganization(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		s.abortError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) handleListTransportations(c *gin.Context) {
	list, err := s.db.ListTransportations(c.Request.Context())
	if err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(list), "transportations": list})
}

// handleExport выгружает реестры в файл и отдает его клиенту
func (s *Server) handleExport(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		s.abortError(c, http.StatusBadRequest, err)
		return
	}

	if err := os.MkdirAll(s.config.ExportDir, 0o755); err != nil {
		s.abortError(c, http.StatusInternalServerError, fmt.Errorf("failed to create export dir: %w", err))
		return
	}

	filename := filepath.Join(s.config.ExportDir,
		fmt.Sprintf("registry_%s.%s", time.Now().Format("20060102_150405"), format.Ext()))
	if err := s.exporter.Export(c.Request.Context(), format, filename); err != nil {
		s.abortError(c, http.StatusInternalServerError, err)
		return
	}

	c.FileAttachment(filename, filepath.Base(filename))
}

// handleHealth возвращает состояние сервера
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}
