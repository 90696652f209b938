package handlers

import (
	"net/http"
	"strconv"

	"slogforge/db"
	"slogforge/models"
)

const exampleNotFoundMsg = "Example not found"

func parseExampleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid example id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func CreateExample(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExampleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	example, err := db.CreateExample(req)
	if err != nil {
		writeJSON(w, models.ExampleResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, models.ExampleResponse{Success: true, Example: example})
}

func GetExamples(w http.ResponseWriter, r *http.Request) {
	examples, err := db.GetExamples(r.URL.Query().Get("rfc_version"))
	if err != nil {
		writeJSON(w, models.ExampleResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, models.ExampleResponse{Success: true, Examples: examples})
}

func GetExample(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExampleID(w, r)
	if !ok {
		return
	}

	example, err := db.GetExample(id)
	if err != nil {
		writeJSON(w, models.ExampleResponse{Success: false, Error: err.Error()})
		return
	}
	if example == nil {
		http.Error(w, exampleNotFoundMsg, http.StatusNotFound)
		return
	}

	writeJSON(w, models.ExampleResponse{Success: true, Example: example})
}

func UpdateExample(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExampleID(w, r)
	if !ok {
		return
	}

	var req models.UpdateExampleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	example, err := db.UpdateExample(id, req)
	if err != nil {
		writeJSON(w, models.ExampleResponse{Success: false, Error: err.Error()})
		return
	}
	if example == nil {
		http.Error(w, exampleNotFoundMsg, http.StatusNotFound)
		return
	}

	writeJSON(w, models.ExampleResponse{Success: true, Example: example})
}

func DeleteExample(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExampleID(w, r)
	if !ok {
		return
	}

	deleted, err := db.DeleteExample(id)
	if err != nil {
		writeJSON(w, models.ExampleResponse{Success: false, Error: err.Error()})
		return
	}
	if !deleted {
		http.Error(w, exampleNotFoundMsg, http.StatusNotFound)
		return
	}

	writeJSON(w, models.ExampleResponse{Success: true})
}
