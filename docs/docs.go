// Package docs registers the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "lintang birda saputra"
        },
        "license": {
            "name": "GNU Affero General Public License v3.0",
            "url": "https://www.gnu.org/licenses/gpl-3.0.en.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/graph": {
            "get": {
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "road network nodes and edges",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.GraphResponse"}}
                }
            }
        },
        "/navigations/routes": {
            "post": {
                "description": "runs one search per metric (length, time, consumption) and reports every route with its length, travel time and consumption",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "shortest, fastest and most efficient route between two node ids",
                "parameters": [
                    {
                        "description": "source and target node ids",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.RoutesRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.RoutesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/navigations/routes-by-position": {
            "post": {
                "description": "snaps from and to onto their nearest nodes, then answers like /navigations/routes",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "three-metric route query between the nodes nearest to two positions",
                "parameters": [
                    {
                        "description": "from and to positions",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.RoutesByPositionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.RoutesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        }
    },
    "definitions": {
        "datastructure.Coordinate": {
            "type": "object",
            "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "rest.EdgeResponse": {
            "description": "edge of the road network",
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "consumption_rate": {"type": "number"},
                "from": {"type": "string"},
                "length": {"type": "number"},
                "speed": {"type": "number"},
                "to": {"type": "string"}
            }
        },
        "rest.ErrResponse": {
            "description": "error response",
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "validation": {"type": "array", "items": {"type": "string"}}
            }
        },
        "rest.GraphResponse": {
            "description": "all nodes and edges, for drawing the network",
            "type": "object",
            "properties": {
                "edges": {"type": "array", "items": {"$ref": "#/definitions/rest.EdgeResponse"}},
                "nodes": {"type": "array", "items": {"$ref": "#/definitions/rest.NodeResponse"}}
            }
        },
        "rest.InstructionResponse": {
            "description": "one turn by turn step of a route",
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "distance": {"type": "number"},
                "instruction": {"type": "string"},
                "node": {"type": "string"},
                "point": {"$ref": "#/definitions/datastructure.Coordinate"},
                "time_hours": {"type": "number"}
            }
        },
        "rest.NodeResponse": {
            "description": "node of the road network",
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "rest.Position": {
            "description": "planar position",
            "type": "object",
            "required": ["x", "y"],
            "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "rest.RouteResponse": {
            "description": "one labelled route. found is false when the target cannot be reached",
            "type": "object",
            "properties": {
                "consumption": {"type": "number"},
                "coordinates": {"type": "array", "items": {"$ref": "#/definitions/datastructure.Coordinate"}},
                "directions": {"type": "array", "items": {"$ref": "#/definitions/rest.InstructionResponse"}},
                "distance": {"type": "number"},
                "found": {"type": "boolean"},
                "label": {"type": "string"},
                "metric": {"type": "string"},
                "path": {"type": "array", "items": {"type": "string"}},
                "polyline": {"type": "string"},
                "time": {"type": "string"},
                "time_hours": {"type": "number"}
            }
        },
        "rest.RoutesByPositionRequest": {
            "description": "request body for a route query between two planar positions",
            "type": "object",
            "properties": {
                "from": {"$ref": "#/definitions/rest.Position"},
                "to": {"$ref": "#/definitions/rest.Position"}
            }
        },
        "rest.RoutesRequest": {
            "description": "request body for a three-metric route query between two node ids",
            "type": "object",
            "required": ["source", "target"],
            "properties": {
                "source": {"type": "string"},
                "target": {"type": "string"}
            }
        },
        "rest.RoutesResponse": {
            "description": "response body of a route query, routes ordered shortest, fastest, most efficient",
            "type": "object",
            "properties": {
                "routes": {"type": "array", "items": {"$ref": "#/definitions/rest.RouteResponse"}},
                "source": {"type": "string"},
                "target": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "triroute API",
	Description:      "shortest, fastest and most efficient routes over a csv road network",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
