// Package dto holds the wire-shape records exchanged between the HTTP
// boundary and the service layer. Optional fields are pointers: a nil field
// in an update means "keep the persisted value".
package dto

type UserDto struct {
	ID       int64   `json:"id"`
	FullName *string `json:"fullName"`
	Title    *string `json:"title"`
	Age      *int    `json:"age"`
}

// UserBooksDto is the response shape of the composed user+books operations.
type UserBooksDto struct {
	UserID  int64   `json:"userId"`
	BookIDs []int64 `json:"booksIdList"`
}

type BookDto struct {
	ID        int64   `json:"id"`
	UserID    *int64  `json:"userId"`
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	PageCount *int64  `json:"pageCount"`
}
