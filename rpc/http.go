package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/storage"
	"github.com/dimfeld/httptreemux"
	"github.com/gofrs/uuid"
	"github.com/gorilla/handlers"
	"github.com/unrolled/render"
)

const callBodyMaximumSize = 1024 * 1024

type R struct {
	Custom *config.Custom
	Store  storage.Store
}

type Call struct {
	Id     string        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom, store storage.Store) *httptreemux.TreeMux {
	if custom == nil {
		custom = config.Default()
	}
	router, impl := httptreemux.New(), &R{Custom: custom, Store: store}
	router.POST("/", impl.handle)
	registerHanders(router)
	return router
}

func registerHanders(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("PANIC %v\n%s\n", rcv, debug.Stack())
		err := fmt.Errorf("panic %v", rcv)
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, callBodyMaximumSize))
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	if call.Id == "" {
		call.Id = uuid.Must(uuid.NewV4()).String()
	}
	logger.Verbosef("RPC %s %s %v\n", call.Id, call.Method, call.Params)

	data, err := impl.dispatch(&call)
	if err != nil {
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"id": call.Id, "error": err.Error()})
	} else {
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"id": call.Id, "data": data})
	}
}

func (impl *R) dispatch(call *Call) (interface{}, error) {
	switch call.Method {
	case "getinfo":
		return getInfo(impl.Custom, impl.Store)
	case "parse":
		return parseRational(call.Params)
	case "add", "sub", "mul", "div":
		return arithmetic(call.Method, call.Params)
	case "neg", "inv":
		return unary(call.Method, call.Params)
	case "compare":
		return compare(call.Params)
	case "inrange":
		return inRange(call.Params)
	case "decimal":
		return toDecimal(impl.Custom, call.Params)
	case "hash":
		return hash(call.Params)
	case "eval":
		return eval(impl.Store, call.Params)
	case "getregister":
		return getRegister(impl.Store, call.Params)
	case "setregister":
		return setRegister(impl.Store, call.Params)
	case "removeregister":
		return removeRegister(impl.Store, call.Params)
	case "listregisters":
		return listRegisters(impl.Store)
	default:
		return nil, fmt.Errorf("unknown method %s", call.Method)
	}
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST,DELETE")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}

func NewHandler(custom *config.Custom, store storage.Store) http.Handler {
	router := NewRouter(custom, store)
	handler := handleCORS(router)
	return handlers.ProxyHeaders(handler)
}

func StartHTTP(custom *config.Custom, store storage.Store, port int) error {
	server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: NewHandler(custom, store)}
	logger.Printf("RPC listening on %d\n", port)
	return server.ListenAndServe()
}
