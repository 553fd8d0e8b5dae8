// Package v1 implements the version 1 read API
package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/api/common"
	"github.com/ttbdata/ecfr-sync/internal/service"
)

type routes struct {
	svc    *service.Service
	logger *zap.Logger
}

// Router builds the version 1 route tree
func Router(svc *service.Service, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	rt := &routes{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Get("/titles", rt.listTitles)
	r.Get("/titles/{number}", rt.getTitle)
	r.Get("/titles/{number}/nodes", rt.listNodes)
	r.Get("/nodes", rt.getNode)
	r.Get("/syncs", rt.listSyncs)
	return r
}

func (rt *routes) listTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := rt.svc.ListTitles(r.Context())
	if err != nil {
		rt.serverError(w, "failed to list titles", err)
		return
	}
	common.WriteJSONResponse(w, http.StatusOK, titles)
}

func (rt *routes) getTitle(w http.ResponseWriter, r *http.Request) {
	number, ok := titleNumber(w, r)
	if !ok {
		return
	}
	title, err := rt.svc.GetTitle(r.Context(), number)
	if errors.Is(err, service.ErrNotFound) {
		common.WriteErrorResponse(w, http.StatusNotFound, "title not found")
		return
	}
	if err != nil {
		rt.serverError(w, "failed to get title", err)
		return
	}
	common.WriteJSONResponse(w, http.StatusOK, title)
}

func (rt *routes) listNodes(w http.ResponseWriter, r *http.Request) {
	number, ok := titleNumber(w, r)
	if !ok {
		return
	}
	filter := service.NodeFilter{
		Type:     r.URL.Query().Get("type"),
		LeafOnly: r.URL.Query().Get("leaf") == "true",
	}
	nodes, err := rt.svc.ListNodes(r.Context(), number, filter)
	if err != nil {
		rt.serverError(w, "failed to list nodes", err)
		return
	}
	common.WriteJSONResponse(w, http.StatusOK, nodes)
}

func (rt *routes) getNode(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		common.WriteErrorResponse(w, http.StatusBadRequest, "missing ref query parameter")
		return
	}
	node, err := rt.svc.GetNode(r.Context(), ref)
	if errors.Is(err, service.ErrNotFound) {
		common.WriteErrorResponse(w, http.StatusNotFound, "node not found")
		return
	}
	if err != nil {
		rt.serverError(w, "failed to get node", err)
		return
	}
	common.WriteJSONResponse(w, http.StatusOK, node)
}

func (rt *routes) listSyncs(w http.ResponseWriter, r *http.Request) {
	syncs, err := rt.svc.ListSyncs(r.Context())
	if err != nil {
		rt.serverError(w, "failed to list syncs", err)
		return
	}
	common.WriteJSONResponse(w, http.StatusOK, syncs)
}

func (rt *routes) serverError(w http.ResponseWriter, msg string, err error) {
	rt.logger.Error(msg, zap.Error(err))
	common.WriteErrorResponse(w, http.StatusInternalServerError, msg)
}

func titleNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		common.WriteErrorResponse(w, http.StatusBadRequest, "invalid title number")
		return 0, false
	}
	return number, true
}
