package controllers

import (
    "bytes"
    "encoding/csv"
    "io"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/models"
)

// maxImportSize caps a CSV upload at 10 MiB.
const maxImportSize = 10 << 20

type importError struct {
    Row      int    `json:"row"`
    Document string `json:"document,omitempty"`
    Error    string `json:"error"`
}

// ImportUsers bulk-creates users from a CSV upload.
// Expected header columns (case-insensitive): name, document, role (optional,
// defaults to Student), course (optional).
func (u *UserController) ImportUsers(c *gin.Context) {
    if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form"})
        return
    }
    file, header, err := c.Request.FormFile("file")
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
        return
    }
    defer file.Close()

    if header == nil || !strings.HasSuffix(strings.ToLower(strings.TrimSpace(header.Filename)), ".csv") {
        c.JSON(http.StatusBadRequest, gin.H{"error": "only .csv files are allowed"})
        return
    }

    data, err := io.ReadAll(io.LimitReader(file, maxImportSize+1))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
        return
    }
    if len(data) > maxImportSize {
        c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10 MiB"})
        return
    }
    if len(bytes.TrimSpace(data)) == 0 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "file is empty"})
        return
    }

    reader := csv.NewReader(bytes.NewReader(data))
    reader.TrimLeadingSpace = true
    rows, err := reader.ReadAll()
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid CSV: " + err.Error()})
        return
    }
    if len(rows) < 2 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "CSV needs a header and at least one row"})
        return
    }

    cols := map[string]int{}
    for i, name := range rows[0] {
        cols[strings.ToLower(strings.TrimSpace(name))] = i
    }
    if _, ok := cols["name"]; !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "missing required column: name"})
        return
    }
    if _, ok := cols["document"]; !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "missing required column: document"})
        return
    }

    cell := func(row []string, name string) string {
        idx, ok := cols[name]
        if !ok || idx >= len(row) {
            return ""
        }
        return strings.TrimSpace(row[idx])
    }

    created := 0
    importErrors := []importError{}
    for i, row := range rows[1:] {
        rowNum := i + 2
        role := cell(row, "role")
        if role == "" {
            role = models.RoleStudent
        }
        user := models.User{
            Name:        cell(row, "name"),
            Document:    cell(row, "document"),
            Role:        role,
            CourseGroup: cell(row, "course"),
        }
        if _, err := u.Users.Create(c.Request.Context(), user); err != nil {
            importErrors = append(importErrors, importError{
                Row:      rowNum,
                Document: user.Document,
                Error:    err.Error(),
            })
            continue
        }
        created++
    }

    c.JSON(http.StatusOK, gin.H{
        "created": created,
        "failed":  len(importErrors),
        "errors":  importErrors,
    })
}
