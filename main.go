package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/shareplate/shareplate-api/api"
	"github.com/shareplate/shareplate-api/store"
)

var (
	server          *api.Server
	sharePlateStore store.SharePlate
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("shareplate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// environment variables of the reference deployment
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("mongo.user", "DB_USER")
	viper.BindEnv("mongo.password", "DB_PASSWORD")
	viper.BindEnv("jwt.secret", "ACCESS_TOKEN_SECRET")

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("mongo.database", "sharePlate")
	viper.SetDefault("mongo.pool", 4)
	viper.SetDefault("cors.origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"https://share-plate-38a2e.web.app",
		"https://share-plate-38a2e.firebaseapp.com",
	})
}

func mongoConnString() string {
	if conn := viper.GetString("mongo.conn"); conn != "" {
		return conn
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@cluster0.okheupy.mongodb.net/?retryWrites=true&w=majority",
		viper.GetString("mongo.user"), viper.GetString("mongo.password"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if sharePlateStore != nil {
			log.Info("Shutting down db store")
			sharePlateStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load JWT signing secret
	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Panic("missing jwt secret (ACCESS_TOKEN_SECRET)")
	}
	log.WithField("prefix", "init").Info("Loaded jwt secret")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(mongoConnString())
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	sharePlateStore = store.NewSharePlateStore(mongoClient, viper.GetString("mongo.database"))

	// Init http server
	server = api.NewServer(sharePlateStore, []byte(jwtSecret))
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
