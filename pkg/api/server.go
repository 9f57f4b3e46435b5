// Package api provides the REST API server for midiwire
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james-see/midiwire/pkg/midi"
	"github.com/james-see/midiwire/pkg/wire"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MIDIWire API
// @version 1.0
// @description API for decoding and encoding raw MIDI 1.0 byte streams
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/decode", handleDecode)
		v1.POST("/encode", handleEncode)
		v1.GET("/messages", listMessages)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "midiwire",
	})
}

// messageInfo describes one entry of the status byte table
type messageInfo struct {
	Status    string `json:"status"`
	Type      string `json:"type"`
	DataBytes int    `json:"dataBytes"`
}

// listMessages godoc
// @Summary List supported message types
// @Description Returns the MIDI status byte table handled by the decoder
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]messageInfo
// @Router /api/v1/messages [get]
func listMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": []messageInfo{
			{Status: "0x80-0x8F", Type: "NoteOff", DataBytes: 2},
			{Status: "0x90-0x9F", Type: "NoteOn", DataBytes: 2},
			{Status: "0xA0-0xAF", Type: "KeyPressure", DataBytes: 2},
			{Status: "0xB0-0xBF", Type: "ControlChange", DataBytes: 2},
			{Status: "0xC0-0xCF", Type: "ProgramChange", DataBytes: 1},
			{Status: "0xD0-0xDF", Type: "ChannelPressure", DataBytes: 1},
			{Status: "0xE0-0xEF", Type: "PitchBendChange", DataBytes: 2},
			{Status: "0xF1", Type: "QuarterFrame", DataBytes: 1},
			{Status: "0xF2", Type: "SongPositionPointer", DataBytes: 2},
			{Status: "0xF3", Type: "SongSelect", DataBytes: 1},
			{Status: "0xF6", Type: "TuneRequest", DataBytes: 0},
			{Status: "0xF8", Type: "TimingClock", DataBytes: 0},
			{Status: "0xFA", Type: "Start", DataBytes: 0},
			{Status: "0xFB", Type: "Continue", DataBytes: 0},
			{Status: "0xFC", Type: "Stop", DataBytes: 0},
			{Status: "0xFE", Type: "ActiveSensing", DataBytes: 0},
			{Status: "0xFF", Type: "Reset", DataBytes: 0},
		},
	})
}

// handleDecode godoc
// @Summary Decode a raw MIDI byte stream
// @Description Upload a raw byte capture (or hex text with ?format=hex) and receive the decoded messages
// @Tags codec
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Byte stream to decode"
// @Param format query string false "Input format: raw (default) or hex"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/decode [post]
func handleDecode(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	if c.DefaultQuery("format", "raw") == "hex" {
		data, err = wire.DecodeHexText(string(data))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	parser := midi.NewParser()
	records := []wire.Record{}
	for _, b := range data {
		if msg := parser.ParseByte(b); msg != nil {
			records = append(records, wire.NewRecord(msg))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bytesRead": len(data),
		"messages":  records,
	})
}

// encodeRequest is the body of an encode call
type encodeRequest struct {
	Messages []wire.Spec `json:"messages" binding:"required"`
}

// handleEncode godoc
// @Summary Encode messages to a raw MIDI byte stream
// @Description Submit a JSON list of messages and receive the rendered bytes
// @Tags codec
// @Accept json
// @Produce application/octet-stream
// @Param body body encodeRequest true "Messages to encode"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/encode [post]
func handleEncode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var out []byte
	buf := make([]byte, 3)
	for i, spec := range req.Messages {
		msg, err := spec.Message()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("message %d: %v", i, err)})
			return
		}
		n, err := midi.Render(msg, buf)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = append(out, buf[:n]...)
	}

	c.Header("Content-Disposition", "attachment; filename=stream.bin")
	c.Data(http.StatusOK, "application/octet-stream", out)
}
