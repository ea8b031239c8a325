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

package reqres

import (
	"fmt"
	"strings"
)

const (
	// DefaultPerPage is the page size used when per_page is not given.
	DefaultPerPage = 6

	// MaxPerPage bounds the page size a client can ask for.
	MaxPerPage = 100

	// Token is handed out for every successful registration and login.
	Token = "QpwL5tke4Pnpja7X4"

	supportURL  = "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral"
	supportText = "Tired of writing endless social media content? Let Content Caddy generate it for you."
)

// User is a single seeded user.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Resource is a single seeded colour resource.
type Resource struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// Support is appended to every successful read.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Page wraps a paginated collection.
type Page[T any] struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []T     `json:"data"`
	Support    Support `json:"support"`
}

// Single wraps a single item.
type Single[T any] struct {
	Data    T       `json:"data"`
	Support Support `json:"support"`
}

// Error is returned for rejected registrations and logins.
type Error struct {
	Error string `json:"error"`
}

func user(id int, first, last string) User {
	return User{
		ID:        id,
		Email:     fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(first), strings.ToLower(last)),
		FirstName: first,
		LastName:  last,
		Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
	}
}

//nolint:gochecknoglobals
var users = []User{
	user(1, "George", "Bluth"),
	user(2, "Janet", "Weaver"),
	user(3, "Emma", "Wong"),
	user(4, "Eve", "Holt"),
	user(5, "Charles", "Morris"),
	user(6, "Tracey", "Ramos"),
	user(7, "Michael", "Lawson"),
	user(8, "Lindsay", "Ferguson"),
	user(9, "Tobias", "Funke"),
	user(10, "Byron", "Fields"),
	user(11, "George", "Edwards"),
	user(12, "Rachel", "Howell"),
}

//nolint:gochecknoglobals
var resources = []Resource{
	{ID: 1, Name: "cerulean", Year: 2000, Color: "#98B2D1", PantoneValue: "15-4020"},
	{ID: 2, Name: "fuchsia rose", Year: 2001, Color: "#C74375", PantoneValue: "17-2031"},
	{ID: 3, Name: "true red", Year: 2002, Color: "#BF1932", PantoneValue: "19-1664"},
	{ID: 4, Name: "aqua sky", Year: 2003, Color: "#7BC4C4", PantoneValue: "14-4811"},
	{ID: 5, Name: "tigerlily", Year: 2004, Color: "#E2583E", PantoneValue: "17-1456"},
	{ID: 6, Name: "blue turquoise", Year: 2005, Color: "#53B0AE", PantoneValue: "15-5217"},
	{ID: 7, Name: "sand dollar", Year: 2006, Color: "#DECDBE", PantoneValue: "13-1106"},
	{ID: 8, Name: "chili pepper", Year: 2007, Color: "#9B1B30", PantoneValue: "19-1557"},
	{ID: 9, Name: "blue iris", Year: 2008, Color: "#5A5B9F", PantoneValue: "18-3943"},
	{ID: 10, Name: "mimosa", Year: 2009, Color: "#F0C05A", PantoneValue: "14-0848"},
	{ID: 11, Name: "turquoise", Year: 2010, Color: "#45B5AA", PantoneValue: "15-5519"},
	{ID: 12, Name: "honeysuckle", Year: 2011, Color: "#D94F70", PantoneValue: "18-2120"},
}

func support() Support {
	return Support{
		URL:  supportURL,
		Text: supportText,
	}
}

// paginate returns the requested page of items, an out of range page yields
// an empty (not nil) data array.  Page sizes are capped at MaxPerPage.
func paginate[T any](items []T, page, perPage int) Page[T] {
	total := len(items)
	perPage = min(perPage, MaxPerPage)
	totalPages := (total + perPage - 1) / perPage

	start := total
	if page <= totalPages {
		start = (page - 1) * perPage
	}

	end := min(start+perPage, total)

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
		Support:    support(),
	}
}

func findUser(id int) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}

	return User{}, false
}

func findUserByEmail(email string) (User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}

	return User{}, false
}

func findResource(id int) (Resource, bool) {
	for _, r := range resources {
		if r.ID == id {
			return r, true
		}
	}

	return Resource{}, false
}
