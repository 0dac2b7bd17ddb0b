package storage

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "io"
    "mime/multipart"
    "net/http"
    "path"
    "sort"
    "strconv"
    "strings"
    "time"
)

// Cloudinary uploads files through the Cloudinary REST API. The "auto"
// resource type accepts images and PDFs alike.
type Cloudinary struct {
    CloudName string
    APIKey    string
    APISecret string
    Folder    string
    HTTP      *http.Client
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string) *Cloudinary {
    return &Cloudinary{
        CloudName: cloudName,
        APIKey:    apiKey,
        APISecret: apiSecret,
        Folder:    folder,
        HTTP:      &http.Client{Timeout: 30 * time.Second},
    }
}

type uploadResult struct {
    PublicID  string `json:"public_id"`
    SecureURL string `json:"secure_url"`
    Bytes     int    `json:"bytes"`
}

func (c *Cloudinary) Save(ctx context.Context, objectPath string, data []byte, _ string) (string, error) {
    publicID := strings.TrimSuffix(objectPath, path.Ext(objectPath))
    params := map[string]string{
        "timestamp": strconv.FormatInt(time.Now().Unix(), 10),
        "public_id": publicID,
    }
    if c.Folder != "" {
        params["folder"] = c.Folder
    }
    signature := c.sign(params)
    params["api_key"] = c.APIKey
    params["signature"] = signature

    var buf bytes.Buffer
    w := multipart.NewWriter(&buf)
    for k, v := range params {
        _ = w.WriteField(k, v)
    }
    part, err := w.CreateFormFile("file", path.Base(objectPath))
    if err != nil {
        return "", fmt.Errorf("cloudinary: create form file failed: %w", err)
    }
    if _, err := io.Copy(part, bytes.NewReader(data)); err != nil {
        return "", fmt.Errorf("cloudinary: copy file failed: %w", err)
    }
    w.Close()

    url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", c.CloudName)
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
    if err != nil {
        return "", fmt.Errorf("cloudinary: create request failed: %w", err)
    }
    req.Header.Set("Content-Type", w.FormDataContentType())

    resp, err := c.HTTP.Do(req)
    if err != nil {
        return "", fmt.Errorf("cloudinary: request failed: %w", err)
    }
    defer resp.Body.Close()

    body, _ := io.ReadAll(resp.Body)
    if resp.StatusCode >= 300 {
        return "", fmt.Errorf("cloudinary: upload failed (%d): %s", resp.StatusCode, string(body))
    }

    var result uploadResult
    if err := json.Unmarshal(body, &result); err != nil {
        return "", fmt.Errorf("cloudinary: decode response failed: %w", err)
    }
    return result.SecureURL, nil
}

// sign builds the SHA1 request signature over the sorted params.
func (c *Cloudinary) sign(params map[string]string) string {
    keys := make([]string, 0, len(params))
    for k := range params {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    pairs := make([]string, 0, len(keys))
    for _, k := range keys {
        pairs = append(pairs, k+"="+params[k])
    }
    payload := strings.Join(pairs, "&") + c.APISecret
    return fmt.Sprintf("%x", sha1.Sum([]byte(payload)))
}
