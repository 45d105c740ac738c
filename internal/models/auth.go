package models

import "github.com/golang-jwt/jwt/v5"

// RoleTeacher is the only role this service issues.
const RoleTeacher = "teacher"

// LoginRequest holds credentials for authenticating a teacher.
type LoginRequest struct {
	TeacherID string `json:"teacherId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the teacher's section.
type LoginResponse struct {
	Token     string  `json:"token"`
	TeacherID string  `json:"teacherId"`
	Section   Section `json:"section"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	TeacherID string `json:"teacherId"`
	jwt.RegisteredClaims
}
