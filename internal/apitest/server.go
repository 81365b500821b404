// Package apitest provides an in-memory stand-in for the remote /vehicles API
// so the client, controllers and commands can be exercised end to end.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

// Fake is a json-server style /vehicles API holding records in memory.
type Fake struct {
	mu       sync.Mutex
	nextID   int
	records  map[string]vehicle.Vehicle
	failWith int
	requests []string
}

// NewFake returns a Fake seeded with the given records. Seeded records without
// an ID receive one.
func NewFake(seed ...vehicle.Vehicle) *Fake {
	s := &Fake{nextID: 1, records: make(map[string]vehicle.Vehicle)}
	for _, v := range seed {
		s.insert(v)
	}
	return s
}

// Server serves a Fake over a local httptest listener.
type Server struct {
	*httptest.Server
	*Fake
}

// NewServer starts a fake API seeded with the given records and closes it when
// the test ends.
func NewServer(t testing.TB, seed ...vehicle.Vehicle) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := NewFake(seed...)
	s := &Server{Fake: fake, Server: httptest.NewServer(fake.Handler())}
	t.Cleanup(s.Close)
	return s
}

// FailWith makes every subsequent request answer with status. Zero restores
// normal behaviour.
func (s *Fake) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Requests returns "METHOD path" for every request received so far.
func (s *Fake) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// Records returns a snapshot of stored vehicles ordered by ID.
func (s *Fake) Records() []vehicle.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]vehicle.Vehicle, 0, len(s.records))
	for _, v := range s.records {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := out[i].ID.Int()
		b, _ := out[j].ID.Int()
		return a < b
	})
	return out
}

func (s *Fake) insert(v vehicle.Vehicle) vehicle.Vehicle {
	if v.IsDraft() {
		v.ID = vehicle.ID(strconv.Itoa(s.nextID))
	}
	if n, ok := v.ID.Int(); ok && int(n) >= s.nextID {
		s.nextID = int(n) + 1
	}
	s.records[v.ID.String()] = v
	return v
}

// Handler returns the gin router serving /vehicles. Extra middleware runs
// before the request is recorded.
func (s *Fake) Handler(middleware ...gin.HandlerFunc) http.Handler {
	r := gin.New()
	r.Use(middleware...)
	r.Use(s.record(), gin.Recovery())

	vehicles := r.Group("/vehicles")
	vehicles.GET("", s.list)
	vehicles.GET("/:id", s.get)
	vehicles.POST("", s.create)
	vehicles.PUT("/:id", s.update)
	vehicles.DELETE("/:id", s.remove)

	return r
}

func (s *Fake) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.Path)
		status := s.failWith
		s.mu.Unlock()

		if status != 0 {
			c.AbortWithStatus(status)
			return
		}
		c.Next()
	}
}

func (s *Fake) list(c *gin.Context) {
	c.JSON(http.StatusOK, s.Records())
}

func (s *Fake) get(c *gin.Context) {
	s.mu.Lock()
	v, ok := s.records[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Fake) create(c *gin.Context) {
	var v vehicle.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.ID = ""

	s.mu.Lock()
	stored := s.insert(v)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, stored)
}

func (s *Fake) update(c *gin.Context) {
	id := c.Param("id")
	var v vehicle.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	v.ID = vehicle.ID(id)
	s.records[id] = v
	c.JSON(http.StatusOK, v)
}

func (s *Fake) remove(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	delete(s.records, id)
	c.JSON(http.StatusOK, gin.H{})
}
