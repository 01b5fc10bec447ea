package tokens

import "solana-signal-lab/internal/domain"

// known is the built-in token directory, grouped by category.
var known = []domain.Token{
	{Symbol: "AI16Z", Address: "HeLp6NuQkmYB4pYWo2zYs22mESHXPQYzXbB8n4V98jwC", Category: domain.CategoryAI},
	{Symbol: "AIXBT", Address: "14zP2ToQ79XWvc7FQpm4bRnp9d6Mp1rFfsUW3gpLcRX", Category: domain.CategoryAI},
	{Symbol: "ANON", Address: "9McvH6w97oewLmPxqQEoHUAv3u5iYMyQ9AeZZhguYf1T", Category: domain.CategoryAI},
	{Symbol: "GRIFFAIN", Address: "KENJSUYLASHUMfHyy5o4Hp2FdNqZg1AsUPhfH2kYvEP", Category: domain.CategoryAI},
	{Symbol: "LOCKIN", Address: "8Ki8DpuWNxu9VsS3kQbarsCWMcFGWkzzA8pUPto9zBd5", Category: domain.CategoryAI},
	{Symbol: "RIFT", Address: "jUpa2aDCzvdR9EF4fqDXmuyMUkonPTohphABLmRkRFj", Category: domain.CategoryAI},
	{Symbol: "SHOGGOTH", Address: "H2c31USxu35MDkBrGph8pUDUnmzo2e4Rf4hnvL2Upump", Category: domain.CategoryAI},
	{Symbol: "VIRTUAL", Address: "3iQL8BFS2vE7mww4ehAqQHAsbmRNCrPxizWAT2Zfyr9y", Category: domain.CategoryAI},
	{Symbol: "ZEREBRO", Address: "8x5VqbHA8D7NkD52uNuS5nnt3PwA8pLD34ymskeSo2Wn", Category: domain.CategoryAI},

	{Symbol: "MOBY", Address: "Cy1GS2FqefgaMbi45UunrUzin1rfEmTUYnomddzBpump", Category: domain.CategoryMeme},
	{Symbol: "VERSE", Address: "vRseBFqTy9QLmmo5qGiwo74AVpdqqMTnxPqWoWMpump", Category: domain.CategoryMeme},
	{Symbol: "DOOD", Address: "DvjbEsdca43oQcw2h3HW1CT7N3x5vRcr3QrvTUHnXvgV", Category: domain.CategoryMeme},
	{Symbol: "YZY", Address: "DrZ26cKJDksVRWib3DVVsjo9eeXccc7hKhDJviiYEEZY", Category: domain.CategoryMeme},
	{Symbol: "STREAMER", Address: "3arUrpH3nzaRJbbpVgY42dcqSq9A5BFgUxKozZ4npump", Category: domain.CategoryMeme},
	{Symbol: "DUPE", Address: "fRfKGCriduzDwSudCwpL7ySCEiboNuryhZDVJtr1a1C", Category: domain.CategoryMeme},
	{Symbol: "PCULE", Address: "J27UYHX5oeaG1YbUGQc8BmJySXDjNWChdGB2Pi2TMDAq", Category: domain.CategoryMeme},
	{Symbol: "POLYFACTS", Address: "FfixAeHevSKBZWoXPTbLk4U4X9piqvzGKvQaFo3cpump", Category: domain.CategoryMeme},
	{Symbol: "CAR", Address: "7oBYdEhV4GkXC19ZfgAvXpJWp2Rn9pm1Bx2cVNxFpump", Category: domain.CategoryMeme},
	{Symbol: "CHILLGUY", Address: "Df6yfrKC8kZE3KNkrHERKzAetSxbrWeniQfyJY4Jpump", Category: domain.CategoryMeme},
	{Symbol: "CWIF", Address: "7atgF8KQo4wJrD5ATGX7t1V2zVvykPJbFfNeVf1icFv1", Category: domain.CategoryMeme},
	{Symbol: "FARTCOIN", Address: "9BB6NFEcjBCtnNLFko2FqVQBq8HHM13kCyYcdQbgpump", Category: domain.CategoryMeme},
	{Symbol: "FWOG", Address: "A8C3xuqscfmyLrte3VmTqrAq8kgMASius9AFNANwpump", Category: domain.CategoryMeme},
	{Symbol: "GOAT", Address: "CzLSujWBLFsSjncfkh59rUFqvafWcY5tzedWJSuypump", Category: domain.CategoryMeme},
	{Symbol: "LABUBU", Address: "JB2wezZLdzWfnaCfHxLg193RS3Rh51ThiXxEDWQDpump", Category: domain.CategoryMeme},
	{Symbol: "LUCE", Address: "CBdCxKo9QavR9hfShgpEBG3zekorAeD7W1jfq2o3pump", Category: domain.CategoryMeme},
	{Symbol: "MICHI", Address: "5mbK36SZ7J19An8jFochhQS4of8g6BwUjbeCSxBSoWdp", Category: domain.CategoryMeme},
	{Symbol: "MOODENG", Address: "ED5nyyWEzpPPiWimP8vYm7sD7TD3LAt3Q3gRTWHzPJBY", Category: domain.CategoryMeme},
	{Symbol: "MOTHER", Address: "3S8qX1MsMqRbiwKg2cQyx7nis1oHMgaCuc9c4VfvVdPN", Category: domain.CategoryMeme},
	{Symbol: "MYRO", Address: "HhJpBhRRn4g56VsyLuT8DL5Bv31HkXqsrahTTUCZeZg4", Category: domain.CategoryMeme},
	{Symbol: "PNUT", Address: "2qEHjDLDLbuBgRYvsxhc5D6uDWAivNFZGan56P1tpump", Category: domain.CategoryMeme},
	{Symbol: "PONKE", Address: "5z3EqYQo9HiCEs3R84RCDMu2n7anpDMxRhdK8PSWmrRC", Category: domain.CategoryMeme},
	{Symbol: "POPCAT", Address: "7GCihgDB8fe6KNjn2MYtkzZcRjQy3t9GHdC8uHYmW2hr", Category: domain.CategoryMeme},
	{Symbol: "RETARDIO", Address: "6ogzHhzdrQr9Pgv6hZ2MNze7UrzBMAFyBBWUYp1Fhitx", Category: domain.CategoryMeme},
	{Symbol: "SAMO", Address: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", Category: domain.CategoryMeme},
	{Symbol: "SLERF", Address: "7BgBvyjrZX1YKz4oh9mjb8ZScatkkwb8DzFx7LoiVkM3", Category: domain.CategoryMeme},
	{Symbol: "titcoin", Address: "FtUEW73K6vEYHfbkfpdBZfWpxgQar2HipGdbutEhpump", Category: domain.CategoryMeme},
	{Symbol: "TRUMP", Address: "6p6xgHyF7AeE6TZkSmFsko444wqoP15icUSqi2jfGiPN", Category: domain.CategoryMeme},
	{Symbol: "UFD", Address: "eL5fUxj2J4CiQsmW85k5FG9DvuQjjUoBHoQBi2Kpump", Category: domain.CategoryMeme},
	{Symbol: "VINE", Address: "6AJcP7wuLwmRYLBNbi825wgguaPsWzPBEHcHndpRpump", Category: domain.CategoryMeme},
	{Symbol: "WEN", Address: "WENWENvqqNya429ubCdR81ZmD69brwQaaBYY6p3LCpk", Category: domain.CategoryMeme},
	{Symbol: "WIF", Address: "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm", Category: domain.CategoryMeme},
	{Symbol: "USELESS", Address: "Dz9mQ9NzkBcCsuGPFJ3r1bS4wgqKMHBPiVuniW8Mbonk", Category: domain.CategoryMeme},
	{Symbol: "TROLL", Address: "5UUH9RTDiSpq6HKS6bp4NdU9PNJpXRXuiw6ShBTBhgH2", Category: domain.CategoryMeme},
	{Symbol: "AURA", Address: "DtR4D9FtVoTX2569gaL837ZgrB6wNjj6tkmnX9Rdk9B2", Category: domain.CategoryMeme},
	{Symbol: "BABYDOGE", Address: "7dUKUopcNWW6CcU4eRxCHh1uiMh32zDrmGf6ufqhxann", Category: domain.CategoryMeme},
	{Symbol: "BOME", Address: "ukHH6c7mMyiWCf1b9pnWe25TSpkDDt3H5pQZgZ74J82", Category: domain.CategoryMeme},
	{Symbol: "GIGA", Address: "63LfDmNb3MQ8mw9MtZ2To9bEA2M71kZUUGq5tiJxcqj9", Category: domain.CategoryMeme},
	{Symbol: "MORI", Address: "8ZHE4ow1a2jjxuoMfyExuNamQNALv5ekZhsBn5nMDf5e", Category: domain.CategoryMeme},
	{Symbol: "BERT", Address: "HgBRWfYxEfvPhtqkaeymCQtHCrKE46qQ43pKe8HCpump", Category: domain.CategoryMeme},
	{Symbol: "NOBODY", Address: "C29ebrgYjYoJPMGPnPSGY1q3mMGk4iDSqnQeQQA7moon", Category: domain.CategoryMeme},
	{Symbol: "NUB", Address: "GtDZKAqvMZMnti46ZewMiXCa4oXF4bZxwQPoKzXPFxZn", Category: domain.CategoryMeme},
	{Symbol: "USDUC", Address: "CB9dDufT3ZuQXqqSfa1c5kY935TEreyBw9XJXxHKpump", Category: domain.CategoryMeme},
	{Symbol: "ANI", Address: "9tqjeRS1swj36Ee5C1iGiwAxjQJNGAVCzaTLwFY8bonk", Category: domain.CategoryMeme},
	{Symbol: "CHILLHOUSE", Address: "GkyPYa7NnCFbduLknCfBfP7p8564X1VZhwZYJ6CZpump", Category: domain.CategoryMeme},
	{Symbol: "MASK", Address: "6MQpbiTC2YcogidTmKqMLK82qvE9z5QEm7EP3AEDpump", Category: domain.CategoryMeme},
	{Symbol: "STARTUP", Address: "97PVGU2DzFqsAWaYU17ZBqGvQFmkqtdMywYBNPAfy8vy", Category: domain.CategoryMeme},
	{Symbol: "SPARK", Address: "5zCETicUCJqJ5Z3wbfFPZqtSpHPYqnggs1wX7ZRpump", Category: domain.CategoryMeme},
	{Symbol: "CLIPPY", Address: "7eMJmn1bYWSQEwxAX7CyngBzGNGu1cT582asKxxRpump", Category: domain.CategoryMeme},
	{Symbol: "TOKABU", Address: "H8xQ6poBjB9DTPMDTKWzWPrnxu4bDEhybxiouF8Ppump", Category: domain.CategoryMeme},
	{Symbol: "PYTHIA", Address: "CreiuhfwdWCN5mJbMJtA9bBpYQrQF2tCBuZwSPWfpump", Category: domain.CategoryMeme},
	{Symbol: "SPX", Address: "J3NKxxXZcnNiMjKw9hYb2K4LUxgwB6t1FtPtQVsv3KFr", Category: domain.CategoryMeme},
	{Symbol: "MEW", Address: "MEW1gQWJ3nEXg2qgERiKu7FAFj79PHvQVREQUzScPP5", Category: domain.CategoryMeme},
	{Symbol: "MITCH", Address: "FDEF2U9geiWS7sdGPCUo2r1wGswkJr2mmVTECiH6pump", Category: domain.CategoryMeme},
	{Symbol: "REKT", Address: "vQoYWru2pbUdcVkUrRH74ktQDJgVjRcDvsoDbUzM5n9", Category: domain.CategoryMeme},
	{Symbol: "BONK", Address: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Category: domain.CategoryMeme},

	{Symbol: "LAUNCHCOIN", Address: "Ey59PH7Z4BFU4HjyKnyMdWt5GGN76KazTAwQihoUXRnk", Category: domain.CategoryDeFi},
	{Symbol: "ME", Address: "MEFNBXixkEbait3xn9bkm8WsJzXtVsaJEn4c8Sam21u", Category: domain.CategoryDeFi},
	{Symbol: "PENGU", Address: "2zMMhcVQEXDtdE6vsFS7S7D5oUodfJHE8vd1gnBouauv", Category: domain.CategoryDeFi},
	{Symbol: "FLIPR", Address: "JCBKQBPvnjr7emdQGCNM8wtE8AZjyvJgh7JMvkfYxypm", Category: domain.CategoryDeFi},
	{Symbol: "TNSR", Address: "TNSRxcUxoT9xBG3de7PiJyTDYu7kskLqcpddxnEJAS6", Category: domain.CategoryDeFi},
	{Symbol: "PUMP", Address: "pumpCmXqMfrsAkQ5r49WcJnRayYRqmXz6ae8H7H9Dfn", Category: domain.CategoryDeFi},
	{Symbol: "MPLX", Address: "METAewgxyPbgwsseH8T16a39CQ5VyVxZi9zXiDPY18m", Category: domain.CategoryDeFi},
	{Symbol: "CLOUD", Address: "CLoUDKc4Ane7HeQcPpE3YHnznRxhMimJ4MyaUqyHFzAu", Category: domain.CategoryDeFi},
	{Symbol: "KMNO", Address: "KMNo3nJsBXfcpJTVhZcXLW7RmTwTt4GVFE7suUBo9sS", Category: domain.CategoryDeFi},
	{Symbol: "STEP", Address: "StepAscQoEioFxxWGnh2sLBDFp9d8rvKz2Yp39iDpyT", Category: domain.CategoryDeFi},
	{Symbol: "UNI", Address: "8FU95xFJhUUkyyCLU13HSzDLs7oC4QZdXQHL6SCeab36", Category: domain.CategoryDeFi},
	{Symbol: "xSTEP", Address: "xStpgUCss9piqeFUk2iLVcvJEGhAdJxJQuwLkXP555G", Category: domain.CategoryDeFi},
	{Symbol: "TUNA", Address: "TUNAfXDZEdQizTMTh3uEvNvYqJmqFHZbEJt8joP4cyx", Category: domain.CategoryDeFi},
	{Symbol: "ZBCN", Address: "ZBCNpuD7YMXzTHB2fhGkGi78MNsHGLRXUhRewNRm9RU", Category: domain.CategoryDeFi},
	{Symbol: "HUMA", Address: "HUMA1821qVDKta3u2ovmfDQeW2fSQouSKE8fkF44wvGw", Category: domain.CategoryDeFi},
	{Symbol: "PYTH", Address: "HZ1JovNiVvGrGNiiYvEozEVgZ58xaU3RKwX8eACQBCt3", Category: domain.CategoryDeFi},
	{Symbol: "LIGHT", Address: "LiGHtkg3uTa9836RaNkKLLriqTNRcMdRAhqjGWNv777", Category: domain.CategoryDeFi},
	{Symbol: "WLFI", Address: "WLFinEv6ypjkczcS83FZqFpgFZYwQXutRbxGe7oC16g", Category: domain.CategoryDeFi},
	{Symbol: "ZEUS", Address: "ZEUS1aR7aX8DFFJf5QjWj2ftDDdNTroMNGo8YoQm3Gq", Category: domain.CategoryDeFi},
	{Symbol: "W", Address: "85VBFQZC9TZkfaptBWjvUw7YbZjy52A6mjtPGjstQAmQ", Category: domain.CategoryDeFi},
	{Symbol: "SAROS", Address: "SarosY6Vscao718M4A778z4CGtvcwcGef5M9MEH1LGL", Category: domain.CategoryDeFi},
	{Symbol: "LAYER", Address: "LAYER4xPpTCb3QL8S9u41EAhAX7mhBn8Q6xMTwY2Yzc", Category: domain.CategoryDeFi},
	{Symbol: "DRIFT", Address: "DriFtupJYLTosbwoN8koMbEYSx54aFAVLddWsbksjwg7", Category: domain.CategoryDeFi},
	{Symbol: "JTO", Address: "jtojtomepa8beP8AuQc6eXt5FriJwfFMwQx2v2f9mCL", Category: domain.CategoryDeFi},
	{Symbol: "JUP", Address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Category: domain.CategoryDeFi},
	{Symbol: "ORCA", Address: "orcaEKTdK7LKz57vaAYr9QeNsVEPfiu6QeMU1kektZE", Category: domain.CategoryDeFi},
	{Symbol: "RAY", Address: "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R", Category: domain.CategoryDeFi},
	{Symbol: "DBR", Address: "DBRiDgJAMsM95moTzJs7M9LnkGErpbv9v6CUR1DXnUu5", Category: domain.CategoryDeFi},
	{Symbol: "MNDE", Address: "MNDEFzGvMt87ueuHvVU9VcTqsAP5b3fTGPsHuuPA5ey", Category: domain.CategoryDeFi},
	{Symbol: "JLP", Address: "27G8MtK7VtTcCHkpASjSDdkWWYfoqT6ggEuKidVJidD4", Category: domain.CategoryDeFi},
	{Symbol: "FLP.1", Address: "NUZ3FDWTtN5SP72BsefbsqpnbAY5oe21LE8bCSkqsEK", Category: domain.CategoryDeFi},
	{Symbol: "ALP", Address: "4yCLi5yWGzpTWMQ1iWHG5CrGYAdBkhyEdsuSugjDUqwj", Category: domain.CategoryDeFi},
	{Symbol: "COLLAT", Address: "C7heQqfNzdMbUFQwcHkL9FvdwsFsDRBnfwZDDyWYCLTZ", Category: domain.CategoryDeFi},
	{Symbol: "CARDS", Address: "CARDSccUMFKoPRZxt5vt3ksUbxEFEcnZ3H2pd3dKxYjp", Category: domain.CategoryDeFi},

	{Symbol: "GRASS", Address: "Grass7B4RdKfBCjTKgSqnXkqjwiGvQyFbuSCUJr3XXjs", Category: domain.CategoryInfrastructure},
	{Symbol: "HNT", Address: "hntyVP6YFm1Hg25TN9WGLqM12b8TQmcknKrdu1oxWux", Category: domain.CategoryInfrastructure},
	{Symbol: "HONEY", Address: "4vMsoUT2BWatFweudnQM1xedRLfJgJ7hswhcpz4xgBTy", Category: domain.CategoryInfrastructure},
	{Symbol: "IO", Address: "BZLbGTNCSFfoth2GYDtwr7e4imWzpR5jqcUuGEwr646K", Category: domain.CategoryInfrastructure},
	{Symbol: "RENDER", Address: "rndrizKT3MK1iimdxRdWabcF7Zg7AR5T4nud4EkHBof", Category: domain.CategoryInfrastructure},
	{Symbol: "PAXG", Address: "C6oFsE8nXRDThzrMEQ5SxaNFGKoyyfWDDVPw37JKvPTe", Category: domain.CategoryInfrastructure},
	{Symbol: "PRCL", Address: "4LLbsb5ReP3yEtYzmXewyGjcir5uXtKFURtaEUVC2AHs", Category: domain.CategoryInfrastructure},
	{Symbol: "INF", Address: "5oVNBeEEQvYi1cX3ir8Dx5n1P7pdxydbGF2X4TxVusJm", Category: domain.CategoryInfrastructure},
	{Symbol: "PST", Address: "59obFNBzyTBGowrkif5uK7ojS58vsuWz3ZCvg6tfZAGw", Category: domain.CategoryInfrastructure},
	{Symbol: "ONYC", Address: "5Y8NV33Vv7WbnLfq3zBcKSdYPrk7g2KoiQoe7M2tcxp5", Category: domain.CategoryInfrastructure},
	{Symbol: "HYPE", Address: "98sMhvDwXj1RQi5c5Mndm3vPe9cBqPrbLaufMXFNMh5g", Category: domain.CategoryInfrastructure},

	{Symbol: "SOL", Address: "So11111111111111111111111111111111111111112", Category: domain.CategoryLST},
	{Symbol: "BBSOL", Address: "Bybit2vBJGhPF52GBdNaQfUJ6ZpThSgHBobjWZpLPb4B", Category: domain.CategoryLST},
	{Symbol: "BNSOL", Address: "BNso1VUJnh4zcfpZa6986Ea66P6TCp59hvtNJ8b1X85", Category: domain.CategoryLST},
	{Symbol: "bonkSOL", Address: "BonK1YhkXEGLZzwtcvRTip3gAL9nCeQD7ppZBLXhtTs", Category: domain.CategoryLST},
	{Symbol: "BSOL", Address: "bSo13r4TkiE4KumL71LsHTPpL2euBYLFx6h9HP3piy1", Category: domain.CategoryLST},
	{Symbol: "CDCSOL", Address: "CDCSoLckzozyktpAp9FWT3w92KFJVEUxAU7cNu2Jn3aX", Category: domain.CategoryLST},
	{Symbol: "CGNTSOL", Address: "CgnTSoL3DgY9SFHxcLj6CgCgKKoTBr6tp4CPAEWy25DE", Category: domain.CategoryLST},
	{Symbol: "dfdvSOL", Address: "sctmB7GPi5L2Q5G9tUSzXvhZ4YiDMEGcRov9KfArQpx", Category: domain.CategoryLST},
	{Symbol: "DSOL", Address: "Dso1bDeDjCQxTrWHqUUi63oBvV7Mdm6WaobLbQ7gnPQ", Category: domain.CategoryLST},
	{Symbol: "ezSOL", Address: "ezSoL6fY1PVdJcJsUpe5CM3xkfmy3zoVCABybm5WtiC", Category: domain.CategoryLST},
	{Symbol: "HSOL", Address: "he1iusmfkpAdwvxLNGV8Y1iSbj4rUy6yMhEA3fotn9A", Category: domain.CategoryLST},
	{Symbol: "HUBSOL", Address: "HUBsveNpjo5pWqNkH57QzxjQASdTVXcSK7bVKTSZtcSX", Category: domain.CategoryLST},
	{Symbol: "JITOSOL", Address: "J1toso1uCk3RLmjorhTtrVwY9HJ7X8V9yYac6Y7kGCPn", Category: domain.CategoryLST},
	{Symbol: "JUPSOL", Address: "jupSoLaHXQiZZTSfEWMTRRgpnyFm8f6sZdosWBjx93v", Category: domain.CategoryLST},
	{Symbol: "JupSOL", Address: "jupSoLaHXQiZZTSfEWMTRRgpnyFm8f6sZdosWBjx93v", Category: domain.CategoryLST},
	{Symbol: "LAINESOL", Address: "LAinEtNLgpmCP9Rvsf5Hn8W6EhNiKLZQti1xfWMLy6X", Category: domain.CategoryLST},
	{Symbol: "MSOL", Address: "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So", Category: domain.CategoryLST},
	{Symbol: "picoSOL", Address: "picobAEvs6w7QEknPce34wAE4gknZA9v5tTonnmHYdX", Category: domain.CategoryLST},
	{Symbol: "strongSOL", Address: "strng7mqqc1MBJJV6vMzYbEqnwVGvKKGKedeCvtktWA", Category: domain.CategoryLST},
	{Symbol: "STSOL", Address: "7dHbWXmci3dT8UFYWYZweBLXgycu7Y3iL6trKn1Y7ARj", Category: domain.CategoryLST},
	{Symbol: "VSOL", Address: "vSoLxydx6akxyMD9XEcPvGYNGq6Nn66oqVb3UkGkei7", Category: domain.CategoryLST},

	{Symbol: "EURC", Address: "HzwqbKZw8HxMN6bF2yFZNrht3c2iXXzpKcFu7uBEDKtr", Category: domain.CategoryStablecoin},
	{Symbol: "FDUSD", Address: "9zNQRsGLjNKwCUU5Gq5LR8beUCPzQMVMqKAi3SSZh54u", Category: domain.CategoryStablecoin},
	{Symbol: "PYUSD", Address: "2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo", Category: domain.CategoryStablecoin},
	{Symbol: "USDC", Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Category: domain.CategoryStablecoin},
	{Symbol: "USDe", Address: "DEkqHyPN7GMRJ5cArtQFAWefqbZb33Hyf6s5iCwjEonT", Category: domain.CategoryStablecoin},
	{Symbol: "USDG", Address: "2u1tszSeqZ3qBWF3uNGPFc8TzMk2tdiwknnRMWGWjGWH", Category: domain.CategoryStablecoin},
	{Symbol: "USDH", Address: "USDH1SM1ojwWUga67PGrgFWUHibbjqMvuMaDkRJTgkX", Category: domain.CategoryStablecoin},
	{Symbol: "USDS", Address: "USDSwr9ApdHk5bvJKMjzff41FfuX8bSxdKcR81vTwcA", Category: domain.CategoryStablecoin},
	{Symbol: "USDT", Address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Category: domain.CategoryStablecoin},
	{Symbol: "UXD", Address: "7kbnvuGBxxj8AG9qp8Scn56muWGaRaFqxg1FsRp3PaFT", Category: domain.CategoryStablecoin},
	{Symbol: "SYRUPUSDC", Address: "AvZZF1YaZDziPY2RCK4oJrRVrbN3mTD9NL24hPeaZeUj", Category: domain.CategoryStablecoin},
	{Symbol: "SUSDE", Address: "Eh6XEPhSwoLv5wFApukmnaVSHQ6sAnoD9BmgmwQoN2sN", Category: domain.CategoryStablecoin},

	{Symbol: "wstETH", Address: "ZScHuTtqZukUrtZS43teTKGs2VqkKL8k4QCouR2n6Uo", Category: domain.CategoryWrapped},
	{Symbol: "AVAX", Address: "AUrMpCDYYcPuHhyNX8gEEqbmDPFUpBpHrNW3vPeCFn5Z", Category: domain.CategoryWrapped},
	{Symbol: "cbBTC", Address: "cbbtcf3aa214zXHbiAZQwf4122FBYbraNdFqgw4iMij", Category: domain.CategoryWrapped},
	{Symbol: "tBTC", Address: "6DNSN2BJsaPFdFFc1zP37kkeNe4Usc1Sqkzr9C9vPWcU", Category: domain.CategoryWrapped},
	{Symbol: "WBTC", Address: "3NZ9JMVBmGAqocybic2c7LQCJScmgsAZ6vQqTDzcqmJh", Category: domain.CategoryWrapped},
	{Symbol: "WETH", Address: "7vfCXTUXx5WJV5JADk17DUJ4ksgau7utNKj4b963voxs", Category: domain.CategoryWrapped},
	{Symbol: "xBTC", Address: "CtzPWv73Sn1dMGVU3ZtLv9yWSyUAanBni19YWDaznnkn", Category: domain.CategoryWrapped},
	{Symbol: "TRX", Address: "GbbesPbaYh5uiAZSYNXTc7w9jty1rpg3P9L4JeN4LkKc", Category: domain.CategoryWrapped},
	{Symbol: "LBTC", Address: "LBTCgU4b3wsFKsPwBn1rRZDx5DoFutM6RPiEt1TPDsY", Category: domain.CategoryWrapped},
	{Symbol: "ZBTC", Address: "zBTCug3er3tLyffELcvDNrKkCymbPWysGcWihESYfLg", Category: domain.CategoryWrapped},
	{Symbol: "ZENBTC", Address: "9hX59xHHnaZXLU6quvm5uGY2iDiT3jczaReHy6A6TYKw", Category: domain.CategoryWrapped},
}

// popularSymbols are offered first in pickers.
var popularSymbols = []string{"WIF", "BONK", "POPCAT", "AI16Z", "VIRTUAL", "JUP", "SOL", "USDC", "cbBTC", "PYTH"}
