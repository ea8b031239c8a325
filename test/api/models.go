/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

// These types are deliberately independent of pkg/reqres, the fake
// service must not be able to change what the suites expect.

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type Resource struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

type UserList struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

type SingleUser struct {
	Data User `json:"data"`
}

type ResourceList struct {
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Data       []Resource `json:"data"`
}

type SingleResource struct {
	Data Resource `json:"data"`
}

// UserRequest is the body of creations and updates.
type UserRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type CreatedUser struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

type UpdatedUser struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt"`
}

// Credentials are sent on registration and login, either field may be
// omitted to exercise validation.
type Credentials struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type Registration struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

type Login struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
