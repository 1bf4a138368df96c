package mocks

import "todolist/infras/otel"

type scope struct{}

func (s *scope) AddEvent(_ string)              {}
func (s *scope) End()                           {}
func (s *scope) SetAttribute(_ string, _ any)   {}
func (s *scope) SetAttributes(_ map[string]any) {}
func (s *scope) TraceError(_ error)             {}
func (s *scope) TraceIfError(_ error)           {}

func NewScope() otel.Scope {
	return &scope{}
}
