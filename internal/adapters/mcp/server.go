// Package mcpadapter exposes the price predictor as MCP tools.
package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/ports"
)

const (
	ToolPredict  = "predict_laptop_price"
	ToolDescribe = "describe_price_model"
)

type Handlers struct {
	predictor ports.PricePredictor
	describer ports.ModelDescriber
}

func NewHandlers(predictor ports.PricePredictor, describer ports.ModelDescriber) *Handlers {
	return &Handlers{predictor: predictor, describer: describer}
}

// NewServer registers both tools on a fresh MCP server.
func NewServer(version string, predictor ports.PricePredictor, describer ports.ModelDescriber) *server.MCPServer {
	h := NewHandlers(predictor, describer)
	s := server.NewMCPServer("laptop-price", version, server.WithToolCapabilities(false))
	s.AddTool(predictTool(describer.Catalog()), h.Predict)
	s.AddTool(mcp.NewTool(ToolDescribe,
		mcp.WithDescription("Describe the loaded price model: feature schema, accepted choices and model version."),
	), h.Describe)
	return s
}

func predictTool(catalog domain.Catalog) mcp.Tool {
	return mcp.NewTool(ToolPredict,
		mcp.WithDescription("Estimate the market price of a laptop from its specification."),
		mcp.WithString("company", mcp.Required(), mcp.Enum(catalog.Companies...), mcp.Description("Manufacturer")),
		mcp.WithString("type_name", mcp.Required(), mcp.Enum(catalog.TypeNames...), mcp.Description("Form factor")),
		mcp.WithString("cpu_brand", mcp.Required(), mcp.Enum(catalog.CPUBrands...)),
		mcp.WithNumber("ram", mcp.Required(), mcp.Description("RAM in GB")),
		mcp.WithString("memory", mcp.Required(), mcp.Description(`Storage such as "512GB SSD" or "1TB HDD"`)),
		mcp.WithString("gpu_brand", mcp.Required(), mcp.Enum(catalog.GPUBrands...)),
		mcp.WithString("op_sys", mcp.Required(), mcp.Enum(catalog.OpSystems...)),
		mcp.WithNumber("weight", mcp.Description("Weight in kg"), mcp.DefaultNumber(catalog.DefaultWeight)),
		mcp.WithNumber("inches", mcp.Required(), mcp.Description("Screen diagonal in inches")),
		mcp.WithString("touch", mcp.Enum(catalog.YesNo...), mcp.DefaultString("No")),
		mcp.WithString("ips", mcp.Enum(catalog.YesNo...), mcp.DefaultString("No")),
		mcp.WithString("pixels", mcp.Required(), mcp.Description(`Resolution as "WIDTHxHEIGHT"`)),
	)
}

func (h *Handlers) Predict(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, err := specFromArguments(req, h.describer.Catalog())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	prediction, err := h.predictor.Predict(ctx, spec)
	if err != nil {
		slog.Warn("mcp_predict_failed", "kind", domain.KindName(err), "error", err.Error())
		return mcp.NewToolResultError("Prediction failed: " + err.Error()), nil
	}
	return jsonResult(prediction)
}

func (h *Handlers) Describe(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"model":    h.describer.ModelInfo(),
		"features": h.describer.Schema(),
		"catalog":  h.describer.Catalog(),
	})
}

func specFromArguments(req mcp.CallToolRequest, catalog domain.Catalog) (domain.SpecificationRecord, error) {
	var spec domain.SpecificationRecord
	var err error

	fields := []struct {
		name string
		dst  *string
	}{
		{"company", &spec.Company},
		{"type_name", &spec.TypeName},
		{"cpu_brand", &spec.CPUBrand},
		{"memory", &spec.Memory},
		{"gpu_brand", &spec.GPUBrand},
		{"op_sys", &spec.OpSys},
		{"pixels", &spec.Pixels},
	}
	for _, field := range fields {
		if *field.dst, err = req.RequireString(field.name); err != nil {
			return spec, err
		}
	}
	spec.Touch = req.GetString("touch", "No")
	spec.IPS = req.GetString("ips", "No")
	spec.Weight = req.GetFloat("weight", catalog.DefaultWeight)

	ram, err := req.RequireFloat("ram")
	if err != nil {
		return spec, err
	}
	if ram != math.Trunc(ram) {
		return spec, fmt.Errorf("ram must be a whole number of GB, got %v", ram)
	}
	spec.Ram = domain.IntPtr(int(ram))

	inches, err := req.RequireFloat("inches")
	if err != nil {
		return spec, err
	}
	spec.Inches = domain.FloatPtr(inches)
	return spec, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
