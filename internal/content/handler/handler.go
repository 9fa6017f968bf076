package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-api/internal/content"
	"github.com/portfolio-cms/portfolio-api/internal/content/repository"
)

const (
	msgNotFound = "item not found"
	msgDeleted  = "item deleted"
)

// RegisterCollection mounts list/create/update/delete for one collection under path.
// Every route also answers with a trailing slash, for engines that have
// RedirectTrailingSlash turned off.
//
//	GET    path      -> 200 newest-first array
//	POST   path      -> 201 created document
//	PUT    path/:id  -> 200 updated document
//	DELETE path/:id  -> 200 {message}
func RegisterCollection[T any, P content.Record[T]](rg *gin.RouterGroup, path string, store repository.Collection[T]) {
	g := rg.Group(path)
	for _, root := range []string{"", "/"} {
		g.GET(root, List[T](store))
		g.POST(root, Create[T, P](store))
	}
	for _, item := range []string{"/:id", "/:id/"} {
		g.PUT(item, Update[T, P](store))
		g.DELETE(item, Delete[T](store))
	}
}

// RegisterSingleton mounts GET (read) and POST (upsert) for a single-document collection.
func RegisterSingleton[T any, P content.Record[T]](rg *gin.RouterGroup, path string, store repository.Singleton[T]) {
	for _, p := range []string{path, path + "/"} {
		rg.GET(p, Get[T](store))
		rg.POST(p, Set[T, P](store))
	}
}

func List[T any](store repository.Collection[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.List(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func Create[T any, P content.Record[T]](store repository.Collection[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec T
		if status, err := bind[T, P](c, &rec); err != nil {
			fail(c, status, err)
			return
		}
		created, err := store.Insert(c.Request.Context(), &rec)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// Update answers 200 with a null body when the id matches nothing. Delete
// reports the same situation as 404; clients already depend on the asymmetry.
// A malformed id is a 400 here and a 500 on Delete, for the same reason.
func Update[T any, P content.Record[T]](store repository.Collection[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch T
		if status, err := bind[T, P](c, &patch); err != nil {
			fail(c, status, err)
			return
		}
		updated, err := store.UpdateByID(c.Request.Context(), c.Param("id"), &patch)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func Delete[T any](store repository.Collection[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteByID(c.Request.Context(), c.Param("id"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		default:
			fail(c, http.StatusInternalServerError, err)
		}
	}
}

// Get returns the single document, or {} while none exists.
func Get[T any](store repository.Singleton[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := store.FindOne(c.Request.Context())
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func Set[T any, P content.Record[T]](store repository.Singleton[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch T
		if status, err := bind[T, P](c, &patch); err != nil {
			fail(c, status, err)
			return
		}
		d, err := store.Upsert(c.Request.Context(), &patch)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// bind decodes a JSON or form body into rec and drops any client-supplied
// id or timestamps. An empty body is an empty record.
func bind[T any, P content.Record[T]](c *gin.Context, rec *T) (int, error) {
	if err := c.ShouldBind(rec); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, err
		}
		return http.StatusBadRequest, err
	}
	*P(rec).Metadata() = content.Meta{}
	return 0, nil
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"message": err.Error()})
}
