package controllers

import (
    "bytes"
    "context"
    "encoding/json"
    "mime/multipart"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository/memory"
    "github.com/preceptoria/backend/internal/services"
)

type importResponse struct {
    Created int `json:"created"`
    Failed  int `json:"failed"`
    Errors  []struct {
        Row      int    `json:"row"`
        Document string `json:"document"`
        Error    string `json:"error"`
    } `json:"errors"`
}

func newImportRouter(t *testing.T) (*gin.Engine, *memory.Users) {
    t.Helper()
    gin.SetMode(gin.TestMode)
    users := memory.NewUsers(memory.Open())
    ctrl := &UserController{Users: services.NewUserService(users)}
    r := gin.New()
    r.POST("/import", ctrl.ImportUsers)
    return r, users
}

func postCSV(t *testing.T, r *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
    t.Helper()
    var buf bytes.Buffer
    w := multipart.NewWriter(&buf)
    part, err := w.CreateFormFile("file", filename)
    require.NoError(t, err)
    _, err = part.Write(content)
    require.NoError(t, err)
    require.NoError(t, w.Close())

    req := httptest.NewRequest(http.MethodPost, "/import", &buf)
    req.Header.Set("Content-Type", w.FormDataContentType())
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)
    return rec
}

func TestImportUsersCreatesRows(t *testing.T) {
    r, users := newImportRouter(t)

    csv := "name,document,role,course\nAna Torres,45111222,,3A\nLaura Vega,20111222,Preceptor,\n"
    rec := postCSV(t, r, "users.csv", []byte(csv))
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

    var resp importResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, 2, resp.Created)
    assert.Equal(t, 0, resp.Failed)

    ana, err := users.GetByDocument(context.Background(), "45111222")
    require.NoError(t, err)
    assert.Equal(t, models.RoleStudent, ana.Role, "blank role defaults to Student")
    assert.Equal(t, "3A", ana.CourseGroup)

    laura, err := users.GetByDocument(context.Background(), "20111222")
    require.NoError(t, err)
    assert.Equal(t, models.RolePreceptor, laura.Role)
}

func TestImportUsersReportsRowErrors(t *testing.T) {
    r, _ := newImportRouter(t)

    csv := "name,document\nAna,45111222\nImpostor,45111222\n"
    rec := postCSV(t, r, "users.csv", []byte(csv))
    require.Equal(t, http.StatusOK, rec.Code)

    var resp importResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, 1, resp.Created)
    assert.Equal(t, 1, resp.Failed)
    require.Len(t, resp.Errors, 1)
    assert.Equal(t, 3, resp.Errors[0].Row)
    assert.Equal(t, "45111222", resp.Errors[0].Document)
}

func TestImportUsersRejectsNonCSV(t *testing.T) {
    r, _ := newImportRouter(t)
    rec := postCSV(t, r, "users.txt", []byte("name,document\nAna,1\n"))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportUsersRejectsOversizedFile(t *testing.T) {
    r, _ := newImportRouter(t)

    content := append([]byte("name,document\n"), bytes.Repeat([]byte("x"), maxImportSize)...)
    rec := postCSV(t, r, "users.csv", content)
    require.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "exceeds")
}
