// main.go
//
// Pitch 2 Angels application portal: public pitch submissions and admin review service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of pitch2angels-portal.
// pitch2angels-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// pitch2angels-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with pitch2angels-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pitch2angels/portal/internal/testsupport"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var noRedis bool
	flag.BoolVar(&noRedis, "no-redis", false, "do not start the statistics cache")
	flag.Parse()

	usage := `
Run a database (and Redis) container for local development of the portal.
Prints the environment to start the server against it and runs until interrupted.

Usage:

devdb [-h] [-no-redis] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to a .env file with DB_TYPE, DB_IMAGE, DB_DATABASE, DB_USER, DB_PASSWORD

example
  devdb -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using defaults and current environment variables\n")
	}

	opts := testsupport.OptionsFromEnv()
	opts.WithRedis = !noRedis

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	containers, err := testsupport.Start(context.Background(), nil, opts)
	if err != nil {
		log.Fatalf("Failed to start containers: %v\n", err)
	}

	env := containers.Env()
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Println("\n# portal environment")
	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, env[key])
	}

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating containers...\n", sig)
	containers.Terminate(nil)
}
