//go:build !debug

package rest

import "github.com/go-chi/chi/v5"

const DebugEnabled = false

func (s *Server) mountDebug(chi.Router) {}
